package registry

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/liuran001/SocialValidator-Go/validator"
)

// mockRuleSet accepts lower-case values for its single field and matches
// links that start with its prefix.
type mockRuleSet struct {
	name   string
	prefix string
}

func (m *mockRuleSet) Name() string {
	return m.name
}

func (m *mockRuleSet) Fields() []string {
	return []string{"id"}
}

func (m *mockRuleSet) Validate(field, value string, _ validator.Options) (string, error) {
	if field != "id" {
		return "", validator.NewUnknownFieldError(m.name, field)
	}
	if value == "" || strings.ToLower(value) != value {
		return "", validator.NewMalformedError(m.name, field, "must be lower-case", value)
	}
	return value, nil
}

func (m *mockRuleSet) MatchLink(link string) (validator.Handle, bool) {
	if m.prefix == "" || !strings.HasPrefix(link, m.prefix) {
		return validator.Handle{}, false
	}
	return validator.Handle{Platform: m.name, Field: "id", Value: "matched"}, true
}

func newMockRuleSet(name, prefix string) validator.RuleSet {
	return &mockRuleSet{name: name, prefix: prefix}
}

func TestRegister_Success(t *testing.T) {
	r := New()
	rs := newMockRuleSet("test", "https://test.com")

	if err := r.Register(rs); err != nil {
		t.Errorf("Register() error = %v, want nil", err)
	}

	got, ok := r.Get("test")
	if !ok {
		t.Fatal("Get() returned false, want true")
	}
	if got.Name() != "test" {
		t.Errorf("Get() name = %v, want test", got.Name())
	}
}

func TestRegister_EmptyName(t *testing.T) {
	r := New()

	if err := r.Register(newMockRuleSet("", "https://test.com")); err == nil {
		t.Error("Register() error = nil, want error for empty name")
	}
}

func TestRegister_NilRuleSet(t *testing.T) {
	r := New()

	if err := r.Register(nil); err == nil {
		t.Error("Register() with nil rule set should return error")
	}
}

func TestRegister_Duplicate(t *testing.T) {
	r := New()
	rs1 := newMockRuleSet("test", "https://test1.com")
	rs2 := newMockRuleSet("test", "https://test2.com")

	if err := r.Register(rs1); err != nil {
		t.Errorf("First Register() error = %v, want nil", err)
	}
	if err := r.Register(rs2); err == nil {
		t.Error("Duplicate Register() error = nil, want error")
	}

	got, ok := r.Get("test")
	if !ok {
		t.Fatal("Get() returned false, want true")
	}
	if _, matched := got.MatchLink("https://test1.com/abc"); !matched {
		t.Error("Original rule set was replaced, want it to remain")
	}
}

func TestGet(t *testing.T) {
	r := New()
	_ = r.Register(newMockRuleSet("telegram", "https://t.me"))

	tests := []struct {
		name   string
		key    string
		wantOk bool
	}{
		{name: "existing rule set", key: "telegram", wantOk: true},
		{name: "case sensitive", key: "Telegram", wantOk: false},
		{name: "missing", key: "youtube", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Get(tt.key)
			if ok != tt.wantOk {
				t.Errorf("Get() ok = %v, want %v", ok, tt.wantOk)
			}
			if !ok && got != nil {
				t.Errorf("Get() = %v, want nil", got)
			}
		})
	}
}

func TestGetAllAndNames(t *testing.T) {
	r := New()

	if len(r.GetAll()) != 0 {
		t.Error("GetAll() on empty registry should be empty")
	}

	_ = r.Register(newMockRuleSet("telegram", ""))
	_ = r.Register(newMockRuleSet("youtube", ""))

	all := r.GetAll()
	if len(all) != 2 {
		t.Fatalf("GetAll() len = %v, want 2", len(all))
	}

	names := r.Names()
	if len(names) != 2 || names[0] != "telegram" || names[1] != "youtube" {
		t.Errorf("Names() = %v, want [telegram youtube]", names)
	}
}

func TestMatchLink_OrderPreservation(t *testing.T) {
	r := New()

	// The first registered rule set wins when several match.
	_ = r.Register(newMockRuleSet("generic", "https://"))
	_ = r.Register(newMockRuleSet("specific", "https://specific.com"))

	h, rs, ok := r.MatchLink("https://specific.com/path")
	if !ok {
		t.Fatal("MatchLink() ok = false, want true")
	}
	if rs.Name() != "generic" {
		t.Errorf("MatchLink() rule set = %v, want generic (first registered)", rs.Name())
	}
	if h.Value != "matched" {
		t.Errorf("MatchLink() value = %v, want matched", h.Value)
	}
}

func TestMatchLink_NotFound(t *testing.T) {
	r := New()
	_ = r.Register(newMockRuleSet("telegram", "https://t.me"))

	h, rs, ok := r.MatchLink("https://example.com/abc")
	if ok || rs != nil || h.Value != "" {
		t.Errorf("MatchLink() = %v, %v, %v; want no match", h, rs, ok)
	}
}

func TestValidate(t *testing.T) {
	r := New()
	_ = r.Register(newMockRuleSet("telegram", ""))

	res := r.Validate(validator.Request{Platform: "telegram", Field: "id", Value: "durov"})
	if !res.Valid() || res.Normalized != "durov" {
		t.Errorf("Validate() = %+v, want valid durov", res)
	}

	res = r.Validate(validator.Request{Platform: "telegram", Field: "id", Value: "Durov"})
	if res.Valid() || !errors.Is(res.Err, validator.ErrMalformed) {
		t.Errorf("Validate() err = %v, want ErrMalformed", res.Err)
	}
	if res.Normalized != "" {
		t.Errorf("Validate() normalized = %q, want empty on failure", res.Normalized)
	}

	res = r.Validate(validator.Request{Platform: "telegram", Field: "bio", Value: "x"})
	if !errors.Is(res.Err, validator.ErrUnknownField) {
		t.Errorf("Validate() err = %v, want ErrUnknownField", res.Err)
	}

	res = r.Validate(validator.Request{Platform: "myspace", Field: "id", Value: "x"})
	if !errors.Is(res.Err, ErrUnknownPlatform) || !validator.IsConfigError(res.Err) {
		t.Errorf("Validate() err = %v, want ErrUnknownPlatform config error", res.Err)
	}
}

func TestReset(t *testing.T) {
	r := New()
	_ = r.Register(newMockRuleSet("telegram", ""))
	r.Reset()

	if _, ok := r.Get("telegram"); ok {
		t.Error("Get() after Reset() ok = true, want false")
	}
	if err := r.Register(newMockRuleSet("telegram", "")); err != nil {
		t.Errorf("Register() after Reset() error = %v", err)
	}
}

func TestConcurrency_RegisterAndGet(t *testing.T) {
	r := New()
	const numGoroutines = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			name := string(rune('A' + id))
			_ = r.Register(newMockRuleSet(name, "https://"+name+".com"))
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			name := string(rune('A' + id))
			r.Get(name)
			r.MatchLink("https://" + name + ".com/x")
		}(i)
	}

	wg.Wait()

	if got := len(r.GetAll()); got != numGoroutines {
		t.Errorf("GetAll() len = %v, want %v", got, numGoroutines)
	}
}
