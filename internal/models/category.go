package models

// Category is a fine-grained transaction classification code assigned by the
// rule engine from the normalized description text.
type Category string

// Categories assigned to bank account transactions.
const (
	CategorySalary                Category = "SALARY"
	CategoryAccountInterest       Category = "ACCOUNT_INTEREST"
	CategoryCellPhoneBill         Category = "CELL_PHONE_BILL"
	CategoryTransferToBrokerage   Category = "TRANSFER_TO_BROKERAGE"
	CategoryTransferFromBrokerage Category = "TRANSFER_FROM_BROKERAGE"
	CategoryVenmoPayment          Category = "VENMO_PAYMENT"
	CategoryVenmoCashout          Category = "VENMO_CASHOUT"
	CategoryHOAPayment            Category = "HOA_PAYMENT"
	CategoryMortgagePayment       Category = "MORTGAGE_PAYMENT"
	CategoryAccountTransfer       Category = "TRANSFER_BETWEEN_CHASE_ACCOUNTS"
	CategoryCashDeposit           Category = "CASH_DEPOSIT"
	CategoryCashWithdrawl         Category = "CASH_WITHDRAWL"
	CategoryWeddingCashWithdrawl  Category = "CASH_WITHDRAWL_FOR_WEDDING"
	CategoryWeddingPhotographer   Category = "WEDDING_PHOTOGRAPHER"
	CategoryCOBRAPayments         Category = "COBRA_PAYMENTS"
	CategoryTaxRefund             Category = "TAX_REFUND"
	CategoryPassportRenewal       Category = "PASSPORT_RENEWAL"
	CategoryJennaWeddingTransfers Category = "JENNA_WEDDING_ACCT_TRANSFERS"
)

// Categories assigned to credit card transactions.
const (
	CategoryCreditCardPayment    Category = "CREDIT_CARD_PAYMENT"
	CategoryOvation              Category = "OVATION"
	CategoryOvationWeekend       Category = "OVATION_WEEKEND"
	CategoryOvationWeekday       Category = "OVATION_WEEKDAY"
	CategoryOtherCoffeeShops     Category = "OTHER_COFFEE_SHOPS"
	CategoryNbhdLunch            Category = "EATING_OUT_NBHD_LUNCH"
	CategoryDominos              Category = "DOMINOS"
	CategoryConcerts             Category = "CONCERTS"
	CategoryNbhdBars             Category = "NBHD_BARS"
	CategoryRideshare            Category = "RIDESHARE"
	CategoryGroceries            Category = "GROCERIES"
	CategoryLiquorStore          Category = "LIQUOR_STORE"
	CategoryPGE                  Category = "PGE"
	CategoryGymMembership        Category = "GYM_MEMBERSHIP"
	CategorySpotifyMembership    Category = "SPOTIFY_MEMBERSHIP"
	CategoryComcast              Category = "COMCAST"
	CategoryHaircut              Category = "HAIRCUT"
	CategoryPowells              Category = "POWELLS"
	CategoryMovies               Category = "MOVIES"
	CategoryWedding              Category = "WEDDING"
	CategoryFastFood             Category = "FAST_FOOD"
	CategoryEatingOut            Category = "EATING_OUT"
	CategoryClothes              Category = "CLOTHES"
	CategoryArsenal              Category = "ARSENAL"
	CategoryPhysicalMedia        Category = "PHYSICAL_MEDIA"
	CategoryAppleCloudStorage    Category = "APPLE_CLOUD_STORAGE"
	CategoryTravelLodging        Category = "TRAVEL_LODGING"
	CategoryFlights              Category = "FLIGHTS"
	CategoryParking              Category = "PARKING"
	CategoryModaCenter           Category = "MODA_CENTER"
	CategoryHBOSubscription      Category = "HBO_SUBSCRIPTION"
	CategoryIndoorSoccer         Category = "INDOOR_SOCCER"
	CategoryGifts                Category = "GIFTS"
	CategoryHomeImprovement      Category = "HOME_IMPROVEMENT"
	CategorySurfing              Category = "SURFING"
	CategoryVideoGames           Category = "VIDEO_GAMES"
	CategoryDryCleaning          Category = "DRY_CLEANING"
	CategoryVODAmazon            Category = "VOD_AMAZON"
	CategoryCarInsurance         Category = "CAR_INSURANCE"
	CategoryCarMaintenance       Category = "CAR_MAINTENANCE"
	CategoryHostingProjects      Category = "HOSTING_SOFTWARE_PROJECTS"
	CategoryAISubscription       Category = "AI_SUBSCRIPTION"
	CategoryAmazonPrime          Category = "AMAZON_PRIME"
	CategoryAmazonPurchase       Category = "AMAZON_PURCHASE"
	CategoryChessSubscription    Category = "CHESS_SUBSCRIPTION"
	CategoryMtG                  Category = "MTG"
	CategoryPeacockSubscription  Category = "PEACOCK_SUBSCRIPTION"
	CategoryParamountSub         Category = "PARAMOUNT_SUBSCRIPTION"
	CategoryGas                  Category = "GAS"
	CategoryFilingTaxes          Category = "FILING_TAXES"
	CategoryDiamondInsurance     Category = "DIAMOND_INSURANCE"
	CategoryBlazerVision         Category = "BLAZER_VISION_SUBSCRIPTION"
	CategoryPodcastSubscription  Category = "PODCAST_SUBSCRIPTION"
	CategoryPortlandArtsTax      Category = "PORTLAND_ARTS_TAX"
	CategoryComputersTechnology  Category = "COMPUTERS_TECHNOLOGY_HARDWARE"
	CategoryShipping             Category = "SHIPPING"
	CategoryRodeo                Category = "RODEO"
	CategoryOtherTransportation  Category = "OTHER_TRANSPORTATION"
)

// CategoryOther is the fallback for descriptions no rule matches. An
// unclassifiable transaction is never an error; it lands here so
// mis-categorized spend stays visible in reports.
const CategoryOther Category = "OTHER"

// MetaCategory is a coarse grouping of categories used for reporting.
type MetaCategory string

const (
	MetaHousing           MetaCategory = "HOUSING"
	MetaWedding           MetaCategory = "WEDDING"
	MetaSubscriptions     MetaCategory = "ENTERTAINMENT_SUBSCRIPTIONS"
	MetaIncome            MetaCategory = "INCOME"
	MetaCashWithdrawl     MetaCategory = "CASH_WITHDRAWL"
	MetaInsurance         MetaCategory = "INSURANCE"
	MetaUtilities         MetaCategory = "UTILITIES"
	MetaEatingOut         MetaCategory = "EATING_OUT"
	MetaGroceries         MetaCategory = "GROCERIES"
	MetaTravel            MetaCategory = "TRAVEL"
	MetaMovies            MetaCategory = "MOVIES"
	MetaPhysicalMedia     MetaCategory = "HOBBY_PHYSICAL_MEDIA"
	MetaConcertsAndSports MetaCategory = "CONCERTS_AND_SPORTING_EVENTS"
	MetaCocktails         MetaCategory = "HOBBY_COCKTAILS"
	MetaSports            MetaCategory = "HOBBY_SPORTS"
	MetaClothes           MetaCategory = "CLOTHES"
	MetaCar               MetaCategory = "CAR"
	MetaVenmo             MetaCategory = "VENMO"
	MetaTech              MetaCategory = "HOBBY_TECH"
	MetaAmazonSpending    MetaCategory = "AMAZON_SPENDING"
	MetaOther             MetaCategory = "OTHER"
)
