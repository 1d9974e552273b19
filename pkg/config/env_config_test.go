package config

import "testing"

func TestReadEnvDefaults(t *testing.T) {
	t.Setenv("MOVIEQUE_VERBOSE", "")
	t.Setenv("MOVIEQUE_FIELD_CONFIG", "")
	t.Setenv("MOVIEQUE_WATCH", "")
	t.Setenv("MOVIEQUE_APP_NAME", "")

	e, err := ReadEnv()
	if err != nil {
		t.Fatalf("ReadEnv() error: %v", err)
	}
	if e.Verbose || e.WatchField || e.FieldConfigPath != "" {
		t.Errorf("unexpected env: %+v", e)
	}
	if e.AppName != DefaultAppName {
		t.Errorf("AppName = %q, want %q", e.AppName, DefaultAppName)
	}
}

func TestReadEnvValues(t *testing.T) {
	t.Setenv("MOVIEQUE_VERBOSE", "true")
	t.Setenv("MOVIEQUE_FIELD_CONFIG", "/tmp/field.yaml")
	t.Setenv("MOVIEQUE_WATCH", "1")
	t.Setenv("MOVIEQUE_APP_NAME", "movieque-dev")

	e, err := ReadEnv()
	if err != nil {
		t.Fatalf("ReadEnv() error: %v", err)
	}
	want := Env{Verbose: true, FieldConfigPath: "/tmp/field.yaml", WatchField: true, AppName: "movieque-dev"}
	if e != want {
		t.Errorf("ReadEnv() = %+v, want %+v", e, want)
	}
}

func TestReadEnvInvalidBool(t *testing.T) {
	t.Setenv("MOVIEQUE_VERBOSE", "maybe")
	if _, err := ReadEnv(); err == nil {
		t.Error("invalid bool should return an error")
	}
}
