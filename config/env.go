// file: kata/config/env.go
package config

import (
	"os"
	"reflect"
	"strings"
)

// envVars maps each variable name, minus the prefix, to its config key path.
var envVars = []struct {
	name string
	path []string
}{
	{"SERVICE_NAME", []string{"service_name"}},
	{"LOG_LEVEL", []string{"log_level"}},
	{"JSON_OUTPUT", []string{"json_output"}},
	{"DECODE_LIST_LIMIT", []string{"decode_list_limit"}},
	{"BATCH_STOP_ON_ERROR", []string{"batch", "stop_on_error"}},
	{"LOG_FILE", []string{"log", "log_file"}},
	{"LOG_STYLE", []string{"log", "style"}},
}

// envMap collects the non-empty prefixed variables into the same nested
// shape a config file decodes from. Setting LOG_FILE also turns on file
// logging.
func envMap(prefix string) map[string]any {
	raw := map[string]any{}
	for _, v := range envVars {
		val := os.Getenv(prefix + v.name)
		if val == "" {
			continue
		}
		node := raw
		for _, key := range v.path[:len(v.path)-1] {
			child, ok := node[key].(map[string]any)
			if !ok {
				child = map[string]any{}
				node[key] = child
			}
			node = child
		}
		node[v.path[len(v.path)-1]] = val
	}

	if logSection, ok := raw["log"].(map[string]any); ok {
		if _, ok := logSection["log_file"]; ok {
			logSection["to_file"] = true
		}
	}
	return raw
}

// boolWordHook lets bool fields take yes/no and on/off on top of what
// strconv.ParseBool accepts.
func boolWordHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	switch strings.ToLower(strings.TrimSpace(data.(string))) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return data, nil
}
