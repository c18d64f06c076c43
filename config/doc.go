// Package config decodes configuration resources into Go values.
//
// Resources are located through a resources.Resolver and decoded according
// to their extension:
//
//	.yaml, .yml    gopkg.in/yaml.v3
//	.json          encoding/json
//	.cue           cuelang.org/go, validated before decoding
//	.properties    github.com/magiconair/properties, using `properties` struct tags
//
// Every load is tracked with errctx, so a failure reports the resource and
// the step that failed:
//
//	var cfg struct {
//	    Driver string `yaml:"driver"`
//	}
//	l := config.NewLoader(resources.Default())
//	if err := l.Load(ctx, "cfg/database.yaml", &cfg); err != nil {
//	    // [PARSING] ### The error may exist in cfg/database.yaml
//	    // ### The error occurred while decoding yaml
//	    // ### could not decode cfg/database.yaml
//	    // ### Cause: yaml: line 2: ...
//	    return err
//	}
package config
