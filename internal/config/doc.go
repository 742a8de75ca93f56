// Package config manages user-level settings stored at ~/.baltemplates/config.yaml.
// It loads, reads and writes keys such as the external tool binary, the
// module template namespace and the last template chosen in the template list.
package config
