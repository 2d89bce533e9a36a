package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalij01/ecobank-report-codes/internal/models"
)

const responsesCSV = `Timestamp,Full Name,Programme of Study,Year of Study,Email Address,Contact,Do you have a bank account?,Would you want to open an account with Ecobank?,Preferred card types
2024/03/01 10:00:00,Ama Mensah,Computer Science,Year 2,ama@example.com,0240000000,Yes,Yes,"Visa, Mastercard"
2024/03/01 10:05:00,Kofi Boateng,Economics,Year 1,,,No,Maybe,Visa
2024/03/01 10:09:00,Esi Owusu,Nursing,Year 3,esi@example.com,0200000000,,No,
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		plainOutput = false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeResponses(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "responses.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSummaryCommand(t *testing.T) {
	out, err := execute(t, "summary", "--file", writeResponses(t, responsesCSV))
	require.NoError(t, err)

	assert.Contains(t, out, "Total responses: 3")
	assert.Contains(t, out, "Do you have a bank account?")
	assert.Contains(t, out, "No response")
	assert.Contains(t, out, "Mastercard")
	assert.Contains(t, out, "Year vs Willingness to Open Ecobank")
}

func TestColumnsCommand(t *testing.T) {
	out, err := execute(t, "columns", "--file", writeResponses(t, "Timestamp,Year of Study\n2024/03/01,Year 1\n"))
	require.NoError(t, err)

	assert.Contains(t, out, "Year of Study")
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, models.FieldCardPreference.String())
}

func TestReportCommandPlain(t *testing.T) {
	out, err := execute(t, "report", "--plain", "--file", writeResponses(t, responsesCSV))
	require.NoError(t, err)

	assert.Contains(t, out, "[1/7]")
	assert.Contains(t, out, "[7/7]")
	assert.Contains(t, out, "Preferred Card Types")
}

func TestReportCommandMissingColumn(t *testing.T) {
	_, err := execute(t, "report", "--plain", "--file", writeResponses(t, "Timestamp\n2024/03/01\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrColumnNotFound)
}

func TestReportCommandMissingFile(t *testing.T) {
	_, err := execute(t, "report", "--plain", "--file", filepath.Join(t.TempDir(), "absent.csv"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}
