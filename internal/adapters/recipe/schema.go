package recipe

// recipeDTO mirrors the structure of the waymark.yaml recipe file.
type recipeDTO struct {
	PackageType string          `yaml:"package_type"`
	Settings    settingsDTO     `yaml:"settings"`
	Generators  []string        `yaml:"generators"`
	Options     map[string]bool `yaml:"options"`
}

// settingsDTO is the settings tuple as declared in the recipe. Every value
// is a free-form string; absent keys stay empty.
type settingsDTO struct {
	OS        string `yaml:"os"`
	Compiler  string `yaml:"compiler"`
	BuildType string `yaml:"build_type"`
	Arch      string `yaml:"arch"`
}

// dataDTO mirrors the structure of the waymark_data.yaml data file.
// Requirements keep file order.
type dataDTO struct {
	Requirements []string `yaml:"requirements"`
}
