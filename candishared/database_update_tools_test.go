package candishared

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldPathUpdate(t *testing.T) {
	type SubModel struct {
		Title   string `bson:"title"`
		Profile string `bson:"profile"`
	}

	type Model struct {
		ID       string   `bson:"-"`
		Name     string   `bson:"db_name,omitempty"`
		Address  string   `bson:"address"`
		IgnoreMe SubModel `bson:"ignore_me" ignoreUpdate:"true"`
		Rel      SubModel `bson:"rel"`
		Plain    int
		SubModel
	}

	data := Model{ID: "1", Name: "01", Address: "street", Rel: SubModel{Title: "rel sub"}, Plain: 9, SubModel: SubModel{Title: "test"}}

	updated := FieldPathUpdate{Prefix: "doc"}.ToMap(&data, DBUpdateSetIgnoredFields("Address", "Rel", "Plain", "Profile"))
	assert.Equal(t, map[string]interface{}{
		"doc.db_name": "01",
		"doc.title":   "test",
	}, updated)

	updated = FieldPathUpdate{}.ToMap(data, DBUpdateSetIgnoredFields("Name", "Title"))
	assert.Equal(t, map[string]interface{}{
		"address": "street",
		"rel":     SubModel{Title: "rel sub"},
		"plain":   9,
		"profile": "",
	}, updated)

	updated = FieldPathUpdate{Prefix: "a.b", IgnoredFields: []string{"profile"}}.ToMap(data)
	keys := make([]string, 0, len(updated))
	for k := range updated {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assert.Equal(t, []string{"a.b.address", "a.b.db_name", "a.b.plain", "a.b.rel", "a.b.title"}, keys)

	var nilModel *Model
	assert.Empty(t, FieldPathUpdate{Prefix: "doc"}.ToMap(nilModel))
	assert.Equal(t, map[string]interface{}{"doc.version": "1.0"}, FieldPathUpdate{Prefix: "doc.version"}.ToMap("1.0"))
}

func TestJoinFieldPath(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{name: "Testcase #1: Positive", keys: []string{"wedding_invitation", "content", "basic_info"}, want: "wedding_invitation.content.basic_info"},
		{name: "Testcase #2: Skip empty", keys: []string{"", "metadata", "", "last_modified"}, want: "metadata.last_modified"},
		{name: "Testcase #3: Trim dot", keys: []string{"wedding_invitation.", ".fonts"}, want: "wedding_invitation.fonts"},
		{name: "Testcase #4: Empty", keys: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinFieldPath(tt.keys...))
		})
	}
}
