package domain

// SourceKind selects the contact store implementation.
type SourceKind string

const (
	SourceAuto        SourceKind = "auto"
	SourceAddressBook SourceKind = "addressbook"
	SourceVCard       SourceKind = "vcard"
	SourceYAML        SourceKind = "yaml"
	SourceCardDAV     SourceKind = "carddav"
)

// OutputFormat selects the text format the mapping is rendered in.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// Config represents the fetchcontacts configuration loaded from fetchcontacts.yaml.
type Config struct {
	Source SourceConfig
	Output OutputConfig
}

type SourceConfig struct {
	Kind    SourceKind
	Path    string
	CardDAV CardDAVConfig
}

type CardDAVConfig struct {
	URL         string
	Username    string
	PasswordEnv string
}

type OutputConfig struct {
	Format OutputFormat
	Indent int
}

// DefaultConfig is what an invocation without any fetchcontacts.yaml runs with.
func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			Kind: SourceAuto,
			CardDAV: CardDAVConfig{
				PasswordEnv: "FETCHCONTACTS_CARDDAV_PASSWORD",
			},
		},
		Output: OutputConfig{
			Format: FormatJSON,
			Indent: 2,
		},
	}
}

// WorkspaceTarget describes where `fetchcontacts init` writes its files.
type WorkspaceTarget struct {
	Root string
}
