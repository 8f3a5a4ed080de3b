package kbfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := writeFile(t, `{
		"college": {"name": "Sample College", "principal": {"name": "Dr. Rao"}},
		"fees": {"tuition_fee_last_date": "2024-01-10"},
		"departments": [
			{"name": "Computer Science", "short": "cse", "hod": "Dr. A", "faculty": [{"name": "Dr. B"}]}
		]
	}`)

	kb, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Sample College", kb.College.Name)
	require.Equal(t, "Dr. Rao", kb.College.Principal.Name)
	require.Equal(t, "2024-01-10", kb.Fees.TuitionFeeLastDate)
	require.Empty(t, kb.Fees.ExamFeeLastDate)
	require.Len(t, kb.Departments, 1)
	require.Equal(t, "cse", kb.Departments[0].Short)
	require.Len(t, kb.Departments[0].Faculty, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeFile(t, `{"college": `))
	require.Error(t, err)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "knowledge_base.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
