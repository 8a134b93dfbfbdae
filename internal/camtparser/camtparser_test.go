package camtparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hemanth4041/statement-loader/internal/models"
)

const sampleCamt = `<Document>
  <BkToCstmrStmt>
    <Stmt>
      <Id>STMT-2021-001</Id>
      <Acct>
        <Id><IBAN>CH9300762011623852957</IBAN></Id>
        <Ccy>CHF</Ccy>
      </Acct>
      <Ntry>
        <Amt Ccy="CHF">150.25</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <BookgDt><Dt>2021-07-06</Dt></BookgDt>
        <ValDt><Dt>2021-07-07</Dt></ValDt>
        <AcctSvcrRef>SVC-1</AcctSvcrRef>
        <AddtlNtryInf>Incoming transfer</AddtlNtryInf>
        <NtryDtls>
          <TxDtls>
            <Refs><EndToEndId>E2E-1</EndToEndId></Refs>
            <RmtInf><Ustrd>Invoice   42 settlement</Ustrd></RmtInf>
            <RltdPties>
              <Dbtr><Nm>Acme GmbH</Nm></Dbtr>
              <DbtrAcct><Id><IBAN>DE89370400440532013000</IBAN></Id></DbtrAcct>
            </RltdPties>
          </TxDtls>
        </NtryDtls>
      </Ntry>
      <Ntry>
        <Amt Ccy="CHF">42.00</Amt>
        <CdtDbtInd>DBIT</CdtDbtInd>
        <BookgDt><Dt>2021-07-06</Dt></BookgDt>
        <ValDt><Dt>2021-07-06</Dt></ValDt>
        <AcctSvcrRef>SVC-2</AcctSvcrRef>
        <AddtlNtryInf>Card payment</AddtlNtryInf>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCamt), 0600))
	return path
}

func testIdentity() models.Identity {
	return models.Identity{OrganisationID: "org-1", BankID: "UBS", FinancialInstitute: "UBSWCHZH"}
}

func TestValidateFormat(t *testing.T) {
	valid, err := ValidateFormat(writeSample(t))
	require.NoError(t, err)
	assert.True(t, valid)

	other := filepath.Join(t.TempDir(), "other.xml")
	require.NoError(t, os.WriteFile(other, []byte("<Document><Other/></Document>"), 0600))
	valid, err = ValidateFormat(other)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestParseToRows(t *testing.T) {
	stmt, err := ParseToRows(writeSample(t), testIdentity())
	require.NoError(t, err)

	assert.Empty(t, stmt.Balances)
	require.Len(t, stmt.Transactions, 2)

	credit := stmt.Transactions[0]
	assert.Equal(t, "org-1", credit.OrganisationID)
	assert.Equal(t, "CH9300762011623852957", credit.AccountNumber)
	assert.Equal(t, "CHF", credit.Currency)
	assert.True(t, credit.TransactionAmount.Equal(decimal.RequireFromString("150.25")))
	assert.Equal(t, models.TransactionTypeCredit, credit.TransactionType)
	assert.Equal(t, "2021-07-06", credit.PostingDate)
	assert.Equal(t, "2021-07-07", credit.ValueDate)
	assert.Equal(t, "SVC-1", credit.BankReference)
	assert.Equal(t, "E2E-1", credit.CustomerReference)
	assert.Equal(t, "Invoice 42 settlement", credit.TransactionDescription)
	assert.Equal(t, "Acme GmbH", credit.CounterpartyName)
	assert.Equal(t, "DE89370400440532013000", credit.CounterpartyAccount)

	debit := stmt.Transactions[1]
	assert.Equal(t, models.TransactionTypeDebit, debit.TransactionType)
	assert.True(t, debit.TransactionAmount.Equal(decimal.RequireFromString("42.00")))
	assert.Equal(t, "Card payment", debit.TransactionDescription)
	assert.Equal(t, "", debit.CounterpartyName)
}

func TestConvertToCSV(t *testing.T) {
	outDir := t.TempDir()
	require.NoError(t, ConvertToCSV(writeSample(t), outDir, testIdentity()))
	assert.FileExists(t, filepath.Join(outDir, "statement_transactions.csv"))
}
