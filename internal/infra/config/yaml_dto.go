// Package config loads fetchcontacts.yaml onto domain.DefaultConfig.
package config

type YAMLFile struct {
	FetchContacts YAMLConfig `yaml:"fetchcontacts"`
}

type YAMLConfig struct {
	Source YAMLSource `yaml:"source"`
	Output YAMLOutput `yaml:"output"`
}

type YAMLSource struct {
	Kind    string      `yaml:"kind"`
	Path    string      `yaml:"path"`
	CardDAV YAMLCardDAV `yaml:"carddav"`
}

type YAMLCardDAV struct {
	URL         string `yaml:"url"`
	Username    string `yaml:"username"`
	PasswordEnv string `yaml:"password_env"`
}

type YAMLOutput struct {
	Format string `yaml:"format"`
	Indent *int   `yaml:"indent"`
}
