package inmem

import "github.com/fwojciec/fundfaq"

// DefaultCatalog returns a fresh copy of the built-in FAQ catalog.
func DefaultCatalog() []*fundfaq.FAQ {
	return []*fundfaq.FAQ{
		{
			ID:         1,
			Keywords:   []string{"expense ratio", "expense", "ter", "total expense ratio", "fees", "charges"},
			Question:   "What is expense ratio in mutual funds?",
			Answer:     `Expense Ratio (Total Expense Ratio - TER) is the annual fee charged by mutual funds to manage your investments. It includes fund management fees, administrative costs, and distribution expenses. SEBI has capped the maximum TER based on AUM:

• Equity schemes: 2.25% for first ₹500 crore, reducing progressively
• Debt schemes: 2.00% for first ₹500 crore, reducing progressively
• Index funds/ETFs: Maximum 1.00%

The expense ratio is deducted daily from the fund's NAV.`,
			Source:     "https://www.sebi.gov.in/legal/circulars/sep-2018/circular-on-total-expense-ratio-ter-and-performance-disclosure-for-mutual-funds_40456.html",
			SourceName: "SEBI Circular",
		},
		{
			ID:         2,
			Keywords:   []string{"exit load", "exit", "redemption charge", "withdrawal charge", "sell"},
			Question:   "What is exit load in mutual funds?",
			Answer:     `Exit load is a fee charged when you redeem (sell) mutual fund units before a specified period. Common exit load structures:

• Equity funds: Typically 1% if redeemed within 1 year
• Liquid funds: Usually nil or graded (up to 7 days)
• ELSS funds: No exit load (but 3-year lock-in applies)
• Overnight funds: Nil

Exit load is deducted from the redemption NAV. Always check the Scheme Information Document (SID) for exact exit load details.`,
			Source:     "https://www.amfiindia.com/investor-corner/knowledge-center/exit-load.html",
			SourceName: "AMFI India",
		},
		{
			ID:         3,
			Keywords:   []string{"minimum sip", "sip amount", "sip minimum", "systematic investment", "monthly investment"},
			Question:   "What is the minimum SIP amount?",
			Answer:     `Minimum SIP (Systematic Investment Plan) amounts vary by fund house and scheme:

• Most funds: ₹500 per month minimum
• Some funds: ₹100 per month (micro-SIP)
• Premium/specialized funds: ₹1,000 - ₹5,000

SIP frequency options include monthly, weekly, daily, or quarterly. Check the specific scheme's SID or the AMC website for exact minimum amounts.`,
			Source:     "https://www.amfiindia.com/investor-corner/knowledge-center/sip.html",
			SourceName: "AMFI India",
		},
		{
			ID:         4,
			Keywords:   []string{"lock-in", "lockin", "elss", "tax saving", "80c", "tax benefit"},
			Question:   "What is the lock-in period for ELSS funds?",
			Answer:     `ELSS (Equity Linked Savings Scheme) has a mandatory lock-in period of 3 years from the date of each investment. Key points:

• Lock-in: 3 years (shortest among Section 80C instruments)
• Tax benefit: Up to ₹1.5 lakh deduction under Section 80C
• Each SIP installment has its own 3-year lock-in
• No premature withdrawal allowed during lock-in
• After lock-in, units can be redeemed freely (no exit load)

LTCG tax applies: 12.5% on gains exceeding ₹1.25 lakh per year.`,
			Source:     "https://www.amfiindia.com/investor-corner/knowledge-center/tax-planning-through-elss.html",
			SourceName: "AMFI India",
		},
		{
			ID:         5,
			Keywords:   []string{"riskometer", "risk", "risk level", "risk category", "risk meter"},
			Question:   "What is a riskometer in mutual funds?",
			Answer:     `Riskometer is a visual risk indicator mandated by SEBI that shows a mutual fund's risk level. It has 6 categories:

1. Low - Principal at low risk (liquid, overnight funds)
2. Low to Moderate - Principal at low to moderate risk
3. Moderate - Principal at moderate risk
4. Moderately High - Principal at moderately high risk
5. High - Principal at high risk (equity funds)
6. Very High - Principal at very high risk (sectoral, thematic funds)

The riskometer must be displayed in all scheme documents and advertisements. It is reviewed monthly.`,
			Source:     "https://www.sebi.gov.in/legal/circulars/oct-2020/circular-on-product-labeling-in-mutual-funds-riskometer_47796.html",
			SourceName: "SEBI Circular",
		},
		{
			ID:         6,
			Keywords:   []string{"benchmark", "index", "comparison", "nifty", "sensex", "performance"},
			Question:   "What is a benchmark in mutual funds?",
			Answer:     `A benchmark is a standard index against which a mutual fund's performance is measured. Common benchmarks:

• Large cap funds: Nifty 50, BSE Sensex
• Mid cap funds: Nifty Midcap 150
• Small cap funds: Nifty Smallcap 250
• Flexi cap funds: Nifty 500
• Debt funds: CRISIL indices, Nifty bond indices

SEBI mandates funds to declare a Tier 1 benchmark (broad market index) and optionally a Tier 2 benchmark. Performance comparison with benchmark must be shown in factsheets.`,
			Source:     "https://www.sebi.gov.in/legal/circulars/jan-2022/circular-on-benchmarking-of-scheme-s-performance-to-total-return-index_55270.html",
			SourceName: "SEBI Circular",
		},
		{
			ID:         7,
			Keywords:   []string{"statement", "download", "cas", "account statement", "portfolio", "holdings"},
			Question:   "How do I download my mutual fund statement?",
			Answer:     `You can download your Consolidated Account Statement (CAS) through these official methods:

1. CAMS/KFintech - Visit the registrar's website
2. MF Central (AMFI portal) - Single source for all funds
3. Individual AMC websites - Login to your folio
4. Email request - Send email to cams@camsonline.com or mfs@kfintech.com with PAN

MF Central is recommended as it provides a single consolidated view of all your mutual fund holdings across all AMCs.`,
			Source:     "https://www.mfcentral.com/",
			SourceName: "MF Central",
		},
		{
			ID:         8,
			Keywords:   []string{"nav", "net asset value", "price", "unit price", "value"},
			Question:   "What is NAV in mutual funds?",
			Answer:     `NAV (Net Asset Value) is the per-unit market value of a mutual fund scheme. It is calculated as:

NAV = (Total Assets - Total Liabilities) / Number of Units Outstanding

Key points:
• NAV is declared daily (except holidays)
• Cut-off time: 3 PM for equity funds, 1:30 PM for liquid funds
• NAV is published on AMFI website by 11 PM daily
• Purchase/redemption happens at applicable NAV based on cut-off time`,
			Source:     "https://www.amfiindia.com/nav-history-download",
			SourceName: "AMFI India",
		},
		{
			ID:         9,
			Keywords:   []string{"kyc", "know your customer", "verification", "pan", "documents"},
			Question:   "What is KYC for mutual funds?",
			Answer:     `KYC (Know Your Customer) is a one-time verification mandatory for mutual fund investments. Requirements:

• PAN card (mandatory)
• Address proof (Aadhaar, passport, etc.)
• Photograph
• In-Person Verification (IPV)

You can complete KYC through:
1. KRA agencies (CAMS KRA, KFintech, CVL)
2. Online eKYC using Aadhaar
3. Through AMC or distributor

Once KYC is done with one KRA, it's valid across all mutual funds.`,
			Source:     "https://www.camskra.com/",
			SourceName: "CAMS KRA",
		},
		{
			ID:         10,
			Keywords:   []string{"aum", "assets under management", "fund size", "corpus"},
			Question:   "What is AUM in mutual funds?",
			Answer:     `AUM (Assets Under Management) is the total market value of all investments managed by a mutual fund scheme. Key points:

• Higher AUM generally indicates investor confidence
• Very large AUM in small/mid cap funds may impact performance
• AUM affects expense ratio (larger funds have lower TER)
• Industry AUM data is published monthly by AMFI

Check the monthly AMFI data for scheme-wise and AMC-wise AUM figures.`,
			Source:     "https://www.amfiindia.com/research-information/aum-data",
			SourceName: "AMFI India",
		},
	}
}
