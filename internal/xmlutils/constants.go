package xmlutils

// CAMT053 holds the XPath expressions used to walk a CAMT.053 bank to
// customer statement.
type CAMT053 struct {
	Statement struct {
		ID       string
		IBAN     string
		Currency string
	}

	Entry struct {
		Amount         string
		Currency       string
		CreditDebitInd string
		BookingDate    string
		ValueDate      string
		AccountSvcRef  string
		AddEntryInfo   string
	}

	References struct {
		EndToEndID    string
		TransactionID string
	}

	Remittance struct {
		UnstructuredInfo string
	}

	Party struct {
		DebtorName   string
		DebtorIBAN   string
		CreditorName string
		CreditorIBAN string
		AgentBIC     string
	}
}

// DefaultCamt053XPaths returns the XPath set for a standard CAMT.053
// document with namespaces stripped.
func DefaultCamt053XPaths() CAMT053 {
	camt := CAMT053{}

	camt.Statement.ID = "//BkToCstmrStmt/Stmt/Id"
	camt.Statement.IBAN = "//BkToCstmrStmt/Stmt/Acct/Id/IBAN"
	camt.Statement.Currency = "//BkToCstmrStmt/Stmt/Acct/Ccy"

	camt.Entry.Amount = "//Ntry/Amt"
	camt.Entry.Currency = "//Ntry/Amt/@Ccy"
	camt.Entry.CreditDebitInd = "//Ntry/CdtDbtInd"
	camt.Entry.BookingDate = "//Ntry/BookgDt/Dt"
	camt.Entry.ValueDate = "//Ntry/ValDt/Dt"
	camt.Entry.AccountSvcRef = "//Ntry/AcctSvcrRef"
	camt.Entry.AddEntryInfo = "//Ntry/AddtlNtryInf"

	camt.References.EndToEndID = "//Ntry/NtryDtls/TxDtls/Refs/EndToEndId"
	camt.References.TransactionID = "//Ntry/NtryDtls/TxDtls/Refs/TxId"

	camt.Remittance.UnstructuredInfo = "//Ntry/NtryDtls/TxDtls/RmtInf/Ustrd"

	camt.Party.DebtorName = "//Ntry/NtryDtls/TxDtls/RltdPties/Dbtr/Nm"
	camt.Party.DebtorIBAN = "//Ntry/NtryDtls/TxDtls/RltdPties/DbtrAcct/Id/IBAN"
	camt.Party.CreditorName = "//Ntry/NtryDtls/TxDtls/RltdPties/Cdtr/Nm"
	camt.Party.CreditorIBAN = "//Ntry/NtryDtls/TxDtls/RltdPties/CdtrAcct/Id/IBAN"
	camt.Party.AgentBIC = "//Ntry/NtryDtls/TxDtls/RltdAgts/DbtrAgt/FinInstnId/BICFI"

	return camt
}
