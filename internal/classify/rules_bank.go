package classify

import "jcarver/finpipe/internal/models"

// BankAccountRules returns the ordered rule set for bank account
// transactions. The exact "WITHDRAWAL 07/14" rule must stay ahead of the
// generic WITHDRAWAL containment rule; swapping them folds the one-off
// wedding cash withdrawal into ordinary cash withdrawals.
func BankAccountRules() RuleSet {
	return NewRuleSet("bank_account", []Rule{
		{HasPrefix(
			"CLEARCOVER INC PAYROLL",
			"FEDEX DATAWORKS DIR DEP",
			"ECONOMIC CONSULT PAYROLL",
			"EMPLOYMT BENEFIT UI BENEFIT PPD",
		), models.CategorySalary},
		{Equals("INTEREST PAYMENT"), models.CategoryAccountInterest},
		{ContainsAny("VERIZON WIRELESS PAYMENTS"), models.CategoryCellPhoneBill},
		{ContainsAny("VANGUARD BUY INVESTMENT"), models.CategoryTransferToBrokerage},
		{ContainsAny(
			"VANGUARD SELL INVESTMENT",
			"APA TREAS 310 MISC PAY PPD",
		), models.CategoryTransferFromBrokerage},
		{ContainsAny("VENMO PAYMENT"), models.CategoryVenmoPayment},
		{ContainsAny("VENMO CASHOUT"), models.CategoryVenmoCashout},
		{ContainsAny("PINNACLE COA"), models.CategoryHOAPayment},
		{ContainsAny(
			"CHASE CREDIT CRD AUTOPAY",
			"PAYMENT TO CHASE CARD",
		), models.CategoryCreditCardPayment},
		{ContainsAny(
			"ONPOINT COMMUNIT RE PAYMENT",
			"ONPOINT COMM CU MTG PYMTS",
		), models.CategoryMortgagePayment},
		{ContainsAny(
			"ONLINE TRANSFER TO SAV",
			"ONLINE TRANSFER TO CHK",
			"ONLINE TRANSFER FROM SAV",
			"ONLINE TRANSFER FROM CHK",
		), models.CategoryAccountTransfer},
		{ContainsAny(
			"DEPOSIT ID NUMBER",
			"REMOTE ONLINE DEPOSIT",
		), models.CategoryCashDeposit},
		{Equals("WITHDRAWAL 07/14"), models.CategoryWeddingCashWithdrawl},
		{ContainsAny("WITHDRAWAL"), models.CategoryCashWithdrawl},
		{ContainsAny("ALEX ELISE"), models.CategoryWeddingPhotographer},
		{ContainsAny("WEX HEALTH PREMIUMS 28670940 WEB ID"), models.CategoryCOBRAPayments},
		{ContainsAny(
			"OR REVENUE DEPT ORSTTAXRFD",
			"IRS TREAS 310 TAX REF",
		), models.CategoryTaxRefund},
		{ContainsAny("CHECK # 1976 PASSPORTSERVICES PAYMENT ARC ID"), models.CategoryPassportRenewal},
		{ContainsAny(
			"WESTFIELD BANK ACCTVERIFY",
			"WESTBK CK WEBXFR P2P JENNA CARLSON",
		), models.CategoryJennaWeddingTransfers},
	})
}
