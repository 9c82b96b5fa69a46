package validation_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/km-arc/go-beans/framework/validation"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func passes(data map[string]string, rules validation.Rules) bool {
	return validation.Make(data, rules).Passes()
}

func fails(data map[string]string, rules validation.Rules) bool {
	return validation.Make(data, rules).Fails()
}

// ── Rules ─────────────────────────────────────────────────────────────────────

func TestValidation_Required(t *testing.T) {
	if !fails(map[string]string{"name": ""}, validation.Rules{"name": "required"}) {
		t.Error("empty value should fail required")
	}
	if !fails(map[string]string{"name": "   "}, validation.Rules{"name": "required"}) {
		t.Error("whitespace should fail required")
	}
	if !passes(map[string]string{"name": "beans"}, validation.Rules{"name": "required"}) {
		t.Error("non-empty value should pass required")
	}
}

func TestValidation_Required_MessageFormat(t *testing.T) {
	v := validation.Make(map[string]string{}, validation.Rules{"app.name": "required"})
	v.Fails()

	want := "The app.name field is required."
	if got := v.Errors().First("app.name"); got != want {
		t.Errorf("message: got %q want %q", got, want)
	}
}

func TestValidation_Sometimes(t *testing.T) {
	rules := validation.Rules{"addr": "sometimes|address"}
	if !passes(map[string]string{}, rules) {
		t.Error("absent field should skip the remaining rules")
	}
	if !fails(map[string]string{"addr": "nope"}, rules) {
		t.Error("present field should still be validated")
	}
}

func TestValidation_Integer(t *testing.T) {
	if !passes(map[string]string{"n": "42"}, validation.Rules{"n": "integer"}) {
		t.Error("42 should be an integer")
	}
	if !fails(map[string]string{"n": "4.2"}, validation.Rules{"n": "integer"}) {
		t.Error("4.2 should not be an integer")
	}
}

func TestValidation_Boolean(t *testing.T) {
	for _, v := range []string{"true", "false", "1", "0", "TRUE"} {
		if !passes(map[string]string{"b": v}, validation.Rules{"b": "boolean"}) {
			t.Errorf("%q should be a boolean", v)
		}
	}
	if !fails(map[string]string{"b": "maybe"}, validation.Rules{"b": "boolean"}) {
		t.Error("maybe should not be a boolean")
	}
}

func TestValidation_Max(t *testing.T) {
	if !fails(map[string]string{"s": "héllo"}, validation.Rules{"s": "max:4"}) {
		t.Error("5 runes should fail max:4")
	}
	if !passes(map[string]string{"s": "héllo"}, validation.Rules{"s": "max:5"}) {
		t.Error("5 runes should pass max:5")
	}
}

func TestValidation_In(t *testing.T) {
	rules := validation.Rules{"env": "in:local, production,testing"}
	if !passes(map[string]string{"env": "production"}, rules) {
		t.Error("production should be allowed")
	}
	if !fails(map[string]string{"env": "staging"}, rules) {
		t.Error("staging should be rejected")
	}
}

func TestValidation_Regex(t *testing.T) {
	rules := validation.Rules{"name": `regex:^[a-z][a-z0-9-]*$`}
	if !passes(map[string]string{"name": "go-beans"}, rules) {
		t.Error("go-beans should match")
	}
	if !fails(map[string]string{"name": "Go Beans"}, rules) {
		t.Error("Go Beans should not match")
	}
	if !fails(map[string]string{"name": "x"}, validation.Rules{"name": "regex:("}) {
		t.Error("an invalid pattern fails")
	}
}

func TestValidation_Address(t *testing.T) {
	for _, ok := range []string{":8080", "127.0.0.1:9000", "localhost:0"} {
		if !passes(map[string]string{"a": ok}, validation.Rules{"a": "address"}) {
			t.Errorf("%q should be an address", ok)
		}
	}
	for _, bad := range []string{"8080", "host:http", "host:70000"} {
		if !fails(map[string]string{"a": bad}, validation.Rules{"a": "address"}) {
			t.Errorf("%q should not be an address", bad)
		}
	}
}

func TestValidation_Chained_BailsOnFirstFailure(t *testing.T) {
	v := validation.Make(map[string]string{"env": ""}, validation.Rules{"env": "required|in:local"})
	v.Fails()

	if got := len(v.Errors().Bag["env"]); got != 1 {
		t.Errorf("expected 1 message after bail, got %d", got)
	}
}

// ── Errors ────────────────────────────────────────────────────────────────────

func TestErrors_ErrorIsSorted(t *testing.T) {
	v := validation.Make(map[string]string{}, validation.Rules{"b": "required", "a": "required"})
	if !v.Fails() {
		t.Fatal("expected failure")
	}

	msg := v.Errors().Error()
	if !strings.HasPrefix(msg, "The a field") || !strings.Contains(msg, "The b field") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestErrors_FailsIsStable(t *testing.T) {
	v := validation.Make(map[string]string{}, validation.Rules{"a": "required"})
	v.Fails()
	v.Fails()

	if got := len(v.Errors().Bag["a"]); got != 1 {
		t.Errorf("repeated Fails() should not duplicate messages, got %d", got)
	}
}

func TestErrors_JSONShape(t *testing.T) {
	v := validation.Make(map[string]string{}, validation.Rules{"env": "required"})
	v.Fails()

	raw, err := json.Marshal(v.Errors())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `{"errors":{"env":["The env field is required."]}}`) {
		t.Errorf("unexpected JSON: %s", raw)
	}
}
