package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseSchema(t *testing.T, model interface{}) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

func TestFollowupRecordsCascadeWithPatient(t *testing.T) {
	s := parseSchema(t, &Patient{})

	rel, ok := s.Relationships.Relations["FollowupRecords"]
	require.True(t, ok, "patient must own its follow-up records relation")

	constraint := rel.ParseConstraint()
	require.NotNil(t, constraint)
	assert.Equal(t, "CASCADE", constraint.OnDelete)

	require.Len(t, constraint.ForeignKeys, 1)
	assert.Equal(t, "PatientID", constraint.ForeignKeys[0].Name)
}

func TestAuditReferencesClearOnUserDelete(t *testing.T) {
	tests := []struct {
		model    interface{}
		relation string
	}{
		{&Patient{}, "Creator"},
		{&FollowupRecord{}, "Recorder"},
		{&SystemSetting{}, "Updater"},
	}

	for _, tt := range tests {
		rel, ok := parseSchema(t, tt.model).Relationships.Relations[tt.relation]
		require.True(t, ok, tt.relation)

		constraint := rel.ParseConstraint()
		require.NotNil(t, constraint, tt.relation)
		assert.Equal(t, "SET NULL", constraint.OnDelete, tt.relation)
	}
}
