package config

// Glazefile represents the structure of the glaze.yaml configuration file.
type Glazefile struct {
	Version string              `yaml:"version"`
	Root    string              `yaml:"root"`
	Delay   string              `yaml:"delay"`
	Tasks   map[string]*TaskDTO `yaml:"tasks"`
}

// TaskDTO represents a task definition in the configuration.
type TaskDTO struct {
	Kind        string     `yaml:"kind"`
	Src         []string   `yaml:"src"`
	Dest        string     `yaml:"dest"`
	Rename      *RenameDTO `yaml:"rename"`
	Precompress bool       `yaml:"precompress"`
}

// RenameDTO mirrors the gulp-rename option object.
type RenameDTO struct {
	Dirname  string `yaml:"dirname"`
	Prefix   string `yaml:"prefix"`
	Basename string `yaml:"basename"`
	Suffix   string `yaml:"suffix"`
	Extname  string `yaml:"extname"`
}
