// Package config loads mkprefix configuration files.
//
// [Loader] decodes YAML into any [v1beta1.Object], validates it against the
// type's JSON schema and reports errors annotated with the offending source
// lines. [Resolve] finds and loads the project config for a fragment.
package config
