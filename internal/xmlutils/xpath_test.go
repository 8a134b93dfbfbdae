package xmlutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testXML = `<Document>
  <BkToCstmrStmt>
    <Stmt>
      <Id>STMT-001</Id>
      <Ntry><Amt Ccy="EUR">100.50</Amt></Ntry>
      <Ntry><Amt Ccy="CHF">25.00</Amt></Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`

func writeTestXML(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.xml")
	require.NoError(t, os.WriteFile(path, []byte(testXML), 0600))
	return path
}

func TestLoadAndExtract(t *testing.T) {
	root, err := LoadXMLFile(writeTestXML(t))
	require.NoError(t, err)

	amounts, err := ExtractFromXML(root, "//Ntry/Amt")
	require.NoError(t, err)
	assert.Equal(t, []string{"100.50", "25.00"}, amounts)

	currencies, err := ExtractFromXML(root, "//Ntry/Amt/@Ccy")
	require.NoError(t, err)
	assert.Equal(t, []string{"EUR", "CHF"}, currencies)

	none, err := ExtractFromXML(root, "//NoSuchElement")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestExists(t *testing.T) {
	root, err := LoadXMLFile(writeTestXML(t))
	require.NoError(t, err)

	ok, err := Exists(root, "//BkToCstmrStmt/Stmt/Id")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(root, "//BkToCstmrStmt/Stmt/Acct")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetOrEmpty(t *testing.T) {
	values := []string{"a", "b"}
	assert.Equal(t, "a", GetOrEmpty(values, 0))
	assert.Equal(t, "", GetOrEmpty(values, 5))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "one two three", CleanText("  one\n\ttwo   three "))
	assert.Equal(t, "", CleanText("   "))
}
