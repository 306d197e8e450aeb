package fsworkspace

import _ "embed"

//go:embed templates/fetchcontacts.yaml
var configTemplate []byte
