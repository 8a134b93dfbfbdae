package bai2

import (
	"github.com/Hemanth4041/statement-loader/internal/parsererror"
)

// Polarity is the debit or credit direction a type code implies. Status and
// summary-only codes carry no polarity.
type Polarity string

const (
	PolarityCredit Polarity = "CR"
	PolarityDebit  Polarity = "DB"
	PolarityNone   Polarity = ""
)

// TypeCode is one entry of the closed type code registry.
type TypeCode struct {
	Code        string
	Description string
	Polarity    Polarity
}

// LookupTypeCode resolves a three digit code against the registry. The
// registry is closed: codes outside it fail with an unsupported format
// error rather than being inferred.
func LookupTypeCode(code string) (*TypeCode, error) {
	tc, ok := typeCodes[code]
	if !ok {
		return nil, &parsererror.UnsupportedFormatError{Msg: "type code '" + code + "' is not defined in the registry"}
	}
	return &tc, nil
}

var typeCodes = map[string]TypeCode{
	// Account status codes.
	"010": {"010", "Opening Ledger", PolarityNone},
	"011": {"011", "Average Opening Ledger MTD", PolarityNone},
	"015": {"015", "Closing Ledger", PolarityNone},
	"020": {"020", "Average Closing Ledger MTD", PolarityNone},
	"021": {"021", "Average Closing Ledger - Previous Month", PolarityNone},
	"022": {"022", "Aggregate Balance Adjustments", PolarityNone},
	"024": {"024", "Average Closing Ledger YTD - Previous Year", PolarityNone},
	"025": {"025", "Aggregate Balance Adjustments YTD", PolarityNone},
	"030": {"030", "Current Ledger", PolarityNone},
	"037": {"037", "ACH Net Position", PolarityNone},
	"039": {"039", "Total Commitment Amount", PolarityNone},
	"040": {"040", "Opening Available + Total Same-Day ACH DTC Deposit", PolarityNone},
	"045": {"045", "Closing Available", PolarityNone},
	"050": {"050", "Average Closing Available MTD", PolarityNone},
	"051": {"051", "Average Closing Available - Last Month", PolarityNone},
	"054": {"054", "Average Closing Available YTD - Previous Year", PolarityNone},
	"055": {"055", "Loan Balance", PolarityNone},
	"056": {"056", "Total Investment Position", PolarityNone},
	"057": {"057", "Total Float", PolarityNone},
	"059": {"059", "Current Available (CRS Supressed)", PolarityNone},
	"060": {"060", "Current Available", PolarityNone},
	"061": {"061", "Average Current Available MTD", PolarityNone},
	"062": {"062", "Average Current Available YTD", PolarityNone},
	"063": {"063", "Total Float", PolarityNone},
	"065": {"065", "Target Balance", PolarityNone},
	"066": {"066", "Adjusted Balance", PolarityNone},
	"067": {"067", "Adjusted Balance MTD", PolarityNone},
	"068": {"068", "Adjusted Balance YTD", PolarityNone},
	"070": {"070", "0-Day Float", PolarityNone},
	"072": {"072", "1-Day Float", PolarityNone},
	"073": {"073", "Float Adjustment", PolarityNone},
	"074": {"074", "2 or More Days Float", PolarityNone},
	"075": {"075", "3 or More Days Float", PolarityNone},
	"076": {"076", "Adjustment to Balances", PolarityNone},
	"077": {"077", "Average Adjustment to Balances MTD", PolarityNone},
	"078": {"078", "Average Adjustment to Balances YTD", PolarityNone},
	"079": {"079", "4 or More Days Float", PolarityNone},
	"080": {"080", "5 or More Days Float", PolarityNone},
	"081": {"081", "6 or More Days Float", PolarityNone},
	"082": {"082", "Average 1-Day Float MTD", PolarityNone},
	"083": {"083", "Average 1-Day Float YTD", PolarityNone},
	"084": {"084", "Average 2-Day Float MTD", PolarityNone},
	"085": {"085", "Average 2-Day Float YTD", PolarityNone},
	"086": {"086", "Transfer Calculation", PolarityNone},

	// Summary and detail credits.
	"100": {"100", "Total Credits", PolarityCredit},
	"101": {"101", "Total Credit Amount MTD", PolarityCredit},
	"105": {"105", "Credits Not Detailed", PolarityCredit},
	"106": {"106", "Deposits Subject to Float", PolarityCredit},
	"107": {"107", "Total Adjustment Credits YTD", PolarityCredit},
	"108": {"108", "Credit (Any Type)", PolarityCredit},
	"109": {"109", "Current Day Total Lockbox Deposits", PolarityCredit},
	"110": {"110", "Total Lockbox Deposits", PolarityCredit},
	"115": {"115", "Lockbox Deposit", PolarityCredit},
	"116": {"116", "Item in Lockbox Deposit", PolarityCredit},
	"118": {"118", "Lockbox Adjustment Credit", PolarityCredit},
	"120": {"120", "EDI Transaction Credits", PolarityCredit},
	"121": {"121", "EDI Transaction Credit", PolarityCredit},
	"122": {"122", "EDIBANX Credit Received", PolarityCredit},
	"123": {"123", "EDIBANX Credit Return", PolarityCredit},
	"130": {"130", "Total Concentration Credits", PolarityCredit},
	"131": {"131", "Total DTC Credits", PolarityCredit},
	"135": {"135", "DTC Concentration Credit", PolarityCredit},
	"136": {"136", "Item in DTC Deposit", PolarityCredit},
	"140": {"140", "Total ACH Credits", PolarityCredit},
	"142": {"142", "ACH Credit Received", PolarityCredit},
	"143": {"143", "Item in ACH Deposit", PolarityCredit},
	"145": {"145", "ACH Concentration Credit", PolarityCredit},
	"146": {"146", "Total Bank Card Deposits", PolarityCredit},
	"147": {"147", "Individual Bank Card Deposit", PolarityCredit},
	"150": {"150", "Total Preauthorized Payment Credits", PolarityCredit},
	"155": {"155", "Preauthorized Draft Credit", PolarityCredit},
	"156": {"156", "Item in PAC Deposit", PolarityCredit},
	"160": {"160", "Total ACH Disbursing Funding Credits", PolarityCredit},
	"162": {"162", "Corporate Trade Payment Settlement", PolarityCredit},
	"163": {"163", "Corporate Trade Payment Credits", PolarityCredit},
	"164": {"164", "Corporate Trade Payment Credit", PolarityCredit},
	"165": {"165", "Preauthorized ACH Credit", PolarityCredit},
	"166": {"166", "ACH Settlement", PolarityCredit},
	"168": {"168", "ACH Return Item or Adjustment Settlement", PolarityCredit},
	"169": {"169", "Miscellaneous ACH Credit", PolarityCredit},
	"170": {"170", "Total Other Check Deposits", PolarityCredit},
	"171": {"171", "Individual Loan Deposit", PolarityCredit},
	"172": {"172", "Deposit Correction", PolarityCredit},
	"173": {"173", "Bank-Prepared Deposit", PolarityCredit},
	"174": {"174", "Other Deposit", PolarityCredit},
	"175": {"175", "Check Deposit Package", PolarityCredit},
	"176": {"176", "Re-presented Check Deposit", PolarityCredit},
	"178": {"178", "List Post Credits", PolarityCredit},
	"180": {"180", "Total Loan Proceeds", PolarityCredit},
	"182": {"182", "Total Bank-Prepared Deposits", PolarityCredit},
	"184": {"184", "Draft Deposit", PolarityCredit},
	"185": {"185", "Total Miscellaneous Deposits", PolarityCredit},
	"186": {"186", "Total Cash Letter Credits", PolarityCredit},
	"187": {"187", "Cash Letter Credit", PolarityCredit},
	"188": {"188", "Total Cash Letter Adjustments", PolarityCredit},
	"189": {"189", "Cash Letter Adjustment", PolarityCredit},
	"190": {"190", "Total Incoming Money Transfers", PolarityCredit},
	"191": {"191", "Individual Incoming Internal Money Transfer", PolarityCredit},
	"195": {"195", "Incoming Money Transfer", PolarityCredit},
	"196": {"196", "Money Transfer Adjustment", PolarityCredit},
	"198": {"198", "Compensation", PolarityCredit},
	"200": {"200", "Total Automatic Transfer Credits", PolarityCredit},
	"201": {"201", "Individual Automatic Transfer Credit", PolarityCredit},
	"202": {"202", "Bond Operations Credit", PolarityCredit},
	"205": {"205", "Total Book Transfer Credits", PolarityCredit},
	"206": {"206", "Book Transfer Credit", PolarityCredit},
	"207": {"207", "Total International Money Transfer Credits", PolarityCredit},
	"208": {"208", "Individual International Money Transfer Credit", PolarityCredit},
	"210": {"210", "Total International Credits", PolarityCredit},
	"212": {"212", "Foreign Letter of Credit", PolarityCredit},
	"213": {"213", "Letter of Credit", PolarityCredit},
	"214": {"214", "Foreign Exchange of Credit", PolarityCredit},
	"215": {"215", "Total Letters of Credit", PolarityCredit},
	"216": {"216", "Foreign Remittance Credit", PolarityCredit},
	"218": {"218", "Foreign Collection Credit", PolarityCredit},
	"221": {"221", "Foreign Check Purchase", PolarityCredit},
	"222": {"222", "Foreign Checks Deposited", PolarityCredit},
	"224": {"224", "Commission", PolarityCredit},
	"226": {"226", "International Money Market Trading", PolarityCredit},
	"227": {"227", "Standing Order", PolarityCredit},
	"229": {"229", "Miscellaneous International Credit", PolarityCredit},
	"230": {"230", "Total Security Credits", PolarityCredit},
	"231": {"231", "Total Collection Credits", PolarityCredit},
	"232": {"232", "Sale of Debt Security", PolarityCredit},
	"233": {"233", "Securities Sold", PolarityCredit},
	"234": {"234", "Sale of Equity Security", PolarityCredit},
	"235": {"235", "Matured Reverse Repurchase Order", PolarityCredit},
	"236": {"236", "Maturity of Debt Security", PolarityCredit},
	"237": {"237", "Individual Collection Credit", PolarityCredit},
	"238": {"238", "Collection of Dividends", PolarityCredit},
	"240": {"240", "Total Bankers' Acceptance Credits", PolarityCredit},
	"241": {"241", "Bankers' Acceptance", PolarityCredit},
	"242": {"242", "Collection of Interest Income", PolarityCredit},
	"243": {"243", "Matured Fed Funds Purchased", PolarityCredit},
	"244": {"244", "Interest Matured Principal Payment", PolarityCredit},
	"245": {"245", "Monthly Dividends", PolarityCredit},
	"246": {"246", "Commercial Paper", PolarityCredit},
	"250": {"250", "Total Checks Posted and Returned", PolarityCredit},
	"251": {"251", "Total Debit Reversals", PolarityCredit},
	"252": {"252", "Debit Reversal", PolarityCredit},
	"254": {"254", "Posting Error Correction Credit", PolarityCredit},
	"255": {"255", "Check Posted and Returned", PolarityCredit},
	"256": {"256", "Total ACH Return Items", PolarityCredit},
	"257": {"257", "Individual ACH Return Item", PolarityCredit},
	"258": {"258", "ACH Reversal Credit", PolarityCredit},
	"260": {"260", "Total Rejected Credits", PolarityCredit},
	"261": {"261", "Individual Rejected Credit", PolarityCredit},
	"263": {"263", "Overdraft", PolarityCredit},
	"266": {"266", "Return of EDIBANX Deposit", PolarityCredit},
	"270": {"270", "Total ZBA Credits", PolarityCredit},
	"271": {"271", "Net Zero-Balance Amount", PolarityCredit},
	"274": {"274", "Cumulative ZBA or Disbursement Credits", PolarityCredit},
	"275": {"275", "ZBA Credit", PolarityCredit},
	"276": {"276", "ZBA Float Adjustment", PolarityCredit},
	"277": {"277", "ZBA Credit Transfer", PolarityCredit},
	"278": {"278", "ZBA Credit Adjustment", PolarityCredit},
	"280": {"280", "Total Controlled Disbursing Credits", PolarityCredit},
	"281": {"281", "Individual Controlled Disbursing Credit", PolarityCredit},
	"285": {"285", "Total DTC Disbursing Credits", PolarityCredit},
	"286": {"286", "Individual DTC Disbursing Credit", PolarityCredit},
	"294": {"294", "Total ATM Credits", PolarityCredit},
	"295": {"295", "ATM Credit", PolarityCredit},
	"301": {"301", "Commercial Deposit", PolarityCredit},
	"302": {"302", "Correspondent Bank Deposit", PolarityCredit},
	"306": {"306", "Total Credits Less Wire Transfer and Returned Checks", PolarityCredit},
	"308": {"308", "Total Automated Credits", PolarityCredit},
	"331": {"331", "Individual Back Value Credit", PolarityCredit},
	"342": {"342", "Correspondent Collection", PolarityCredit},
	"344": {"344", "Back Value Adjustment", PolarityCredit},
	"345": {"345", "Item in Brab Deposit", PolarityCredit},
	"346": {"346", "Sweep Interest Income", PolarityCredit},
	"347": {"347", "Sweep Principal Sell", PolarityCredit},
	"348": {"348", "Futures Credit", PolarityCredit},
	"349": {"349", "Principal Payments Credit", PolarityCredit},
	"351": {"351", "Individual Investment Sold", PolarityCredit},
	"353": {"353", "Cash Center Credit", PolarityCredit},
	"354": {"354", "Interest Credit", PolarityCredit},
	"357": {"357", "Credit Adjustment", PolarityCredit},
	"358": {"358", "YTD Adjustment Credit", PolarityCredit},
	"359": {"359", "Interest Adjustment Credit", PolarityCredit},
	"362": {"362", "Correspondent Bank Deposit", PolarityCredit},
	"389": {"389", "Cash Center Credit", PolarityCredit},
	"390": {"390", "Total Miscellaneous Credits", PolarityCredit},
	"391": {"391", "Universal Credit", PolarityCredit},
	"392": {"392", "Freight Payment Credit", PolarityCredit},
	"393": {"393", "Itemized Credit Over $10,000", PolarityCredit},
	"394": {"394", "Cumulative Credits", PolarityCredit},
	"395": {"395", "Check Reversal", PolarityCredit},
	"397": {"397", "Float Adjustment", PolarityCredit},
	"398": {"398", "Miscellaneous Fee Refund", PolarityCredit},
	"399": {"399", "Miscellaneous Credit", PolarityCredit},

	// Summary and detail debits.
	"400": {"400", "Total Debits", PolarityDebit},
	"401": {"401", "Total Debit Amount MTD", PolarityDebit},
	"403": {"403", "Today's Total Debits", PolarityDebit},
	"405": {"405", "Total Debit Less Wire Transfers and Charge-Backs", PolarityDebit},
	"406": {"406", "Debits Not Detailed", PolarityDebit},
	"408": {"408", "Float Adjustment", PolarityDebit},
	"409": {"409", "Debit (Any Type)", PolarityDebit},
	"410": {"410", "Total YTD Adjustment", PolarityDebit},
	"412": {"412", "Total Debits (Excluding Returned Items)", PolarityDebit},
	"415": {"415", "Lockbox Debit", PolarityDebit},
	"416": {"416", "Total Lockbox Debits", PolarityDebit},
	"420": {"420", "EDI Transaction Debits", PolarityDebit},
	"421": {"421", "EDI Transaction Debit", PolarityDebit},
	"422": {"422", "EDIBANX Settlement Debit", PolarityDebit},
	"423": {"423", "EDIBANX Return Item Debit", PolarityDebit},
	"430": {"430", "Total Payable-Through Drafts", PolarityDebit},
	"435": {"435", "Payable-Through Draft", PolarityDebit},
	"445": {"445", "ACH Concentration Debit", PolarityDebit},
	"446": {"446", "Total ACH Disbursement Funding Debits", PolarityDebit},
	"447": {"447", "ACH Disbursement Funding Debit", PolarityDebit},
	"450": {"450", "Total ACH Debits", PolarityDebit},
	"451": {"451", "ACH Debit Received", PolarityDebit},
	"452": {"452", "Item in ACH Disbursement or Debit", PolarityDebit},
	"455": {"455", "Preauthorized ACH Debit", PolarityDebit},
	"462": {"462", "Account Holder Initiated ACH Debit", PolarityDebit},
	"464": {"464", "Corporate Trade Payment Debit", PolarityDebit},
	"466": {"466", "ACH Settlement", PolarityDebit},
	"468": {"468", "ACH Return Item or Adjustment Settlement", PolarityDebit},
	"469": {"469", "Miscellaneous ACH Debit", PolarityDebit},
	"470": {"470", "Total Checks Paid", PolarityDebit},
	"471": {"471", "Total Debit Adjustments", PolarityDebit},
	"472": {"472", "Cumulative Checks Paid", PolarityDebit},
	"474": {"474", "Certified Check Debit", PolarityDebit},
	"475": {"475", "Check Paid", PolarityDebit},
	"476": {"476", "Federal Reserve Bank Letter Debit", PolarityDebit},
	"477": {"477", "Bank Originated Debit", PolarityDebit},
	"478": {"478", "List Post Debits", PolarityDebit},
	"479": {"479", "List Post Debit", PolarityDebit},
	"480": {"480", "Total Loan Payments", PolarityDebit},
	"481": {"481", "Individual Loan Payment", PolarityDebit},
	"482": {"482", "Total Bank-Originated Debits", PolarityDebit},
	"484": {"484", "Draft", PolarityDebit},
	"485": {"485", "DTC Debit", PolarityDebit},
	"486": {"486", "Total Cash Letter Debits", PolarityDebit},
	"487": {"487", "Cash Letter Debit", PolarityDebit},
	"489": {"489", "Cash Letter Adjustment", PolarityDebit},
	"490": {"490", "Total Outgoing Money Transfers", PolarityDebit},
	"491": {"491", "Individual Outgoing Internal Money Transfer", PolarityDebit},
	"493": {"493", "Customer Terminal Initiated Money Transfer", PolarityDebit},
	"495": {"495", "Outgoing Money Transfer", PolarityDebit},
	"496": {"496", "Money Transfer Adjustment", PolarityDebit},
	"498": {"498", "Compensation", PolarityDebit},
	"500": {"500", "Total Automatic Transfer Debits", PolarityDebit},
	"501": {"501", "Individual Automatic Transfer Debit", PolarityDebit},
	"502": {"502", "Bond Operations Debit", PolarityDebit},
	"505": {"505", "Total Book Transfer Debits", PolarityDebit},
	"506": {"506", "Book Transfer Debit", PolarityDebit},
	"507": {"507", "Total International Money Transfer Debits", PolarityDebit},
	"508": {"508", "Individual International Money Transfer Debit", PolarityDebit},
	"510": {"510", "Total International Debits", PolarityDebit},
	"512": {"512", "Letter of Credit Debit", PolarityDebit},
	"513": {"513", "Letter of Credit", PolarityDebit},
	"514": {"514", "Foreign Exchange Debit", PolarityDebit},
	"515": {"515", "Total Letters of Credit", PolarityDebit},
	"516": {"516", "Foreign Remittance Debit", PolarityDebit},
	"518": {"518", "Foreign Collection Debit", PolarityDebit},
	"522": {"522", "Foreign Checks Paid", PolarityDebit},
	"524": {"524", "Commission", PolarityDebit},
	"526": {"526", "International Money Market Trading", PolarityDebit},
	"527": {"527", "Standing Order", PolarityDebit},
	"529": {"529", "Miscellaneous International Debit", PolarityDebit},
	"530": {"530", "Total Security Debits", PolarityDebit},
	"531": {"531", "Securities Purchased", PolarityDebit},
	"533": {"533", "Security Collection Debit", PolarityDebit},
	"535": {"535", "Purchase of Equity Securities", PolarityDebit},
	"538": {"538", "Matured Repurchase Order", PolarityDebit},
	"540": {"540", "Total Bankers' Acceptance Debits", PolarityDebit},
	"541": {"541", "Bankers' Acceptance", PolarityDebit},
	"542": {"542", "Purchase of Debt Securities", PolarityDebit},
	"543": {"543", "Debt Security Purchase", PolarityDebit},
	"544": {"544", "Interest Matured Principal Payment", PolarityDebit},
	"546": {"546", "Commercial Paper", PolarityDebit},
	"550": {"550", "Total Deposited Items Returned", PolarityDebit},
	"551": {"551", "Total Credit Reversals", PolarityDebit},
	"552": {"552", "Credit Reversal", PolarityDebit},
	"554": {"554", "Posting Error Correction Debit", PolarityDebit},
	"555": {"555", "Deposited Item Returned", PolarityDebit},
	"556": {"556", "Total ACH Return Items", PolarityDebit},
	"557": {"557", "Individual ACH Return Item", PolarityDebit},
	"558": {"558", "ACH Reversal Debit", PolarityDebit},
	"560": {"560", "Total Rejected Debits", PolarityDebit},
	"561": {"561", "Individual Rejected Debit", PolarityDebit},
	"563": {"563", "Overdraft", PolarityDebit},
	"564": {"564", "Overdraft Fee", PolarityDebit},
	"566": {"566", "Return of EDIBANX Deposit", PolarityDebit},
	"570": {"570", "Total ZBA Debits", PolarityDebit},
	"574": {"574", "Cumulative ZBA or Disbursement Debits", PolarityDebit},
	"575": {"575", "ZBA Debit", PolarityDebit},
	"577": {"577", "ZBA Debit Transfer", PolarityDebit},
	"578": {"578", "ZBA Debit Adjustment", PolarityDebit},
	"580": {"580", "Total Controlled Disbursing Debits", PolarityDebit},
	"581": {"581", "Individual Controlled Disbursing Debit", PolarityDebit},
	"583": {"583", "Total Disbursing Checks Paid - Early Amount", PolarityDebit},
	"584": {"584", "Total Disbursing Checks Paid - Later Amount", PolarityDebit},
	"585": {"585", "Disbursing Funding Requirement", PolarityDebit},
	"586": {"586", "FRB Presentment Estimate", PolarityDebit},
	"587": {"587", "Late Debits (After Notification)", PolarityDebit},
	"588": {"588", "Total Disbursing Checks Paid - Last Amount", PolarityDebit},
	"590": {"590", "Total ATM Debits", PolarityDebit},
	"595": {"595", "ATM Debit", PolarityDebit},
	"596": {"596", "ARP Debit", PolarityDebit},
	"601": {"601", "Estimated Total Disbursement", PolarityDebit},
	"602": {"602", "Adjusted Total Disbursement", PolarityDebit},
	"610": {"610", "Total Funds Required", PolarityDebit},
	"611": {"611", "Total Wire Transfers Out - CHF", PolarityDebit},
	"621": {"621", "Individual Back Value Debit", PolarityDebit},
	"622": {"622", "Letter of Credit", PolarityDebit},
	"627": {"627", "FX Debit", PolarityDebit},
	"629": {"629", "Cash Center Debit", PolarityDebit},
	"630": {"630", "Total Debits Less Wire Transfers and Returned Checks", PolarityDebit},
	"632": {"632", "Sweep Principal Buy", PolarityDebit},
	"633": {"633", "Futures Debit", PolarityDebit},
	"634": {"634", "Principal Payments Debit", PolarityDebit},
	"641": {"641", "Individual Investment Purchased", PolarityDebit},
	"644": {"644", "Interest Debit", PolarityDebit},
	"651": {"651", "Debit Adjustment", PolarityDebit},
	"654": {"654", "Interest Adjustment Debit", PolarityDebit},
	"656": {"656", "Total Investments Purchased", PolarityDebit},
	"657": {"657", "Cash Center Debit", PolarityDebit},
	"658": {"658", "Overdraft Fee", PolarityDebit},
	"661": {"661", "Account Analysis Fee", PolarityDebit},
	"662": {"662", "Correspondent Collection Debit", PolarityDebit},
	"673": {"673", "Deposit Error Correction", PolarityDebit},
	"676": {"676", "Currency and Coin Shipped", PolarityDebit},
	"678": {"678", "Adjusted Total Disbursement", PolarityDebit},
	"681": {"681", "Deposit Error Correction", PolarityDebit},
	"688": {"688", "Cash Center Debit", PolarityDebit},
	"690": {"690", "Total Miscellaneous Debits", PolarityDebit},
	"691": {"691", "Universal Debit", PolarityDebit},
	"692": {"692", "Freight Payment Debit", PolarityDebit},
	"693": {"693", "Itemized Debit Over $10,000", PolarityDebit},
	"694": {"694", "Deposit Reversal", PolarityDebit},
	"695": {"695", "Deposit Correction Debit", PolarityDebit},
	"696": {"696", "Regular Collection Debit", PolarityDebit},
	"697": {"697", "Cumulative Debits", PolarityDebit},
	"698": {"698", "Miscellaneous Fees", PolarityDebit},
	"699": {"699", "Miscellaneous Debit", PolarityDebit},

	// Customized reporting codes.
	"890": {"890", "Non-Monetary Information", PolarityNone},
	"900": {"900", "Customized Summary Information", PolarityNone},
	"910": {"910", "Customized Summary Information", PolarityNone},
	"920": {"920", "Customized Summary Information", PolarityNone},
	"930": {"930", "Customized Summary Information", PolarityNone},
	"940": {"940", "Customized Summary Information", PolarityNone},
	"950": {"950", "Customized Summary Information", PolarityNone},
	"960": {"960", "Customized Summary Information", PolarityNone},
	"970": {"970", "Customized Detail Information", PolarityNone},
	"980": {"980", "Customized Detail Information", PolarityNone},
	"990": {"990", "Customized Detail Information", PolarityNone},
}
