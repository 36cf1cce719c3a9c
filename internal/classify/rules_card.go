package classify

import "jcarver/finpipe/internal/models"

// CreditCardRules returns the ordered rule set for credit card transactions.
// Several orderings carry meaning: "AMAZON WEB SERVICES" must be claimed by
// hosting before "AMAZON PRIME", which must precede the generic AMAZON/AMZN
// catch-all; "SQ *OVATION COFFEE" must be claimed before the other coffee
// shop patterns.
func CreditCardRules() RuleSet {
	return NewRuleSet("credit_card", []Rule{
		{ContainsAny(
			"PAYMENT THANK YOU-MOBILE",
			"AUTOMATIC PAYMENT - THANK",
			"PAYMENT THANK YOU - WEB",
		), models.CategoryCreditCardPayment},
		{ContainsAny("SQ *OVATION COFFEE"), models.CategoryOvation},
		{ContainsAny(
			"SQ *COFFEE TIME",
			"CAFFE UMBRIA PORTLAND",
			"SQ *SISTERS COFFEE COMPAN",
			"TST*CAFFE UMBRIA PORTLAN",
			"GOOD COFFEE",
		), models.CategoryOtherCoffeeShops},
		{ContainsAny(
			"CHIPOTLE ONLINE",
			"TST*PIZZICATO - PEARL",
			"TST* PIZZICATO - PEARL",
			"SQ *LOVEJOY BAKERS",
			"CHIPOTLE MEX GR ONLINE",
			"CHIPOTLE 1358",
		), models.CategoryNbhdLunch},
		{ContainsAny("DOMINO"), models.CategoryDominos},
		{ContainsAny(
			"HAWTHORNE THEATER",
			"TST*REVOLUTION HALL",
			"TST* MCMENAMINS - CRYSTAL",
			"CASCADES AMPHITHEATRE",
			"SEATGEEK TICKETS",
			"AXS.COMFESTIVAL GV R",
			"TM *KAYTRANADA X JUSTI",
			"MCMENAMINS CONCERTS",
			"CASCADE TICKETS",
			"REVOLUTION HALL",
			"TCKTWEB*GOATWHOREVITRI",
			"PP*GATES TO HELL",
			"SQ *VITRIOL",
		), models.CategoryConcerts},
		{ContainsAny(
			"PAYMASTER LOUNGE",
			"TST* JERRY'S TAVERN",
			"JOES CELLAR",
			"JOE'S CELLAR",
			"SPO*THEFIELDSBAR&AMP;GRILL",
			"THE FIELDS BAR &AMP; GRILL",
			"CARLITAS",
			"THEFIELDSBAR",
		), models.CategoryNbhdBars},
		{ContainsAny("LYFT", "UBER"), models.CategoryRideshare},
		{ContainsAny(
			"SAFEWAY #2790",
			"NEW SEASONS MARKET",
			"WHOLEFDS PRT 10148",
			"FRED-MEYER #0360",
			"ZUPAN'S MARKET",
			"COSTCO WHSE #0111",
			"ALBERTSONS #3531",
			"WHOLEFDS BRD 10266",
			"WHOLE FOODS PRT 10148",
			"UWAJIMAYA",
			"TRADER JOE S #146",
			"THE MEATING PLACE",
			"WORLD FOODS",
			"COSTCO WHSE #0780",
			"CVS/PHARMACY #11282",
		), models.CategoryGroceries},
		{ContainsAny("LIQUOR STORE", "ROLLING RIVER SPIRITS"), models.CategoryLiquorStore},
		{Equals("PORTLAND GENERAL ELECTRIC"), models.CategoryPGE},
		{ContainsAny("LA FIT"), models.CategoryGymMembership},
		{ContainsAny("SPOTIFY"), models.CategorySpotifyMembership},
		{ContainsAny("COMCAST"), models.CategoryComcast},
		{ContainsAny("SQ *MICHELLE THRASHER", "SQ *SLABTOWN BARBERSHOP"), models.CategoryHaircut},
		{Equals("POWELL'S BURNSIDE"), models.CategoryPowells},
		{ContainsAny(
			"REGAL CINEMAS INC",
			"CINEMA 21",
			"FOX TOWER STM 10",
			"HOLLYWOOD THEATRE",
			"LIVING ROOM THEATERS",
			"REGAL BRIDGEPORT  0652",
		), models.CategoryMovies},
		{ContainsAny(
			"BLACK BUTTE RANCH (1)",
			"ZOLA.COM*REGISTRY",
			"BLACK BUTTE RANCH FOOD",
			"IN *THE BOB LLC",
			"FORYOURPARTY",
			"SISTERS SALOON &AMP; RANCH",
			"PROPER CLOTH",
			"MORJAS",
			"EUROPEAN MASTER TAILOR",
		), models.CategoryWedding},
		{ContainsAny(
			"SQ *SHAKE SHACK",
			"MCDONALD'S",
			"BURGERVILLE",
			"JACK IN THE BOX 7160",
		), models.CategoryFastFood},
		{ContainsAny(
			"SQ *GASTRO MANIA",
			"JOJO PEARL",
			"TST* WILD CHILD PIZZA - F",
			"MOMO YAMA",
			"TST* SIZZLE PIE - WEST",
			"TST* MISSISSIPPI STUDIOS",
			"TST* 10 BARREL BREWING -",
			"TST* SCOTTIE'S PIZZA PARL",
			"TST* BREAKSIDE BREWERY -",
			"TST* 10 BARREL PORTLAND N",
			"TST* QDS",
			"TST* SILVER HARBOR BREWIN",
			"TST*RIVER PIG - PORTLAND",
			"YAMA SUSHI AND SAKE BAR",
			"BANNINGS RESTAURANT",
			"TST* GARDEN TAVERN",
			"TST* FIRE ON THE MOUNTAIN",
			"THE TRIPLE LINDY",
			"SQ *SCOTTIE'S PIZZA PARLO",
			"SQ *RANCH PIZZA SOUTHEAST",
			"PROST TAVERN PORTLAND",
			"RINGSIDE STEAK HOUSE WEST",
			"SQ *GROUND KONTROL CLASSI",
			"SQ *BAERLIC SOUTHEAST",
			"LOYAL LEGION",
			"MARATHON TAVERNA",
			"OX",
			"LUCKY LABRADOR BEER HALL",
			"K-TOWN KOREAN BBQ",
			"PORTLAND CITY GRILL-PO",
			"HALE PELE",
			"SQ *UPRIGHT BREWING",
			"SQ *FREELAND SPIRITS",
			"SQ *JOHNS MARKETPLACE",
			"9TH AVE MINI MART",
			"ORGEATWORKS",
			"AP MARKET",
			"DIVISION FOOD MART PDX",
			"ALBERTA STREET MARKET",
			"SQ *UP NORTH SURF CLUB",
			"RAYS FOOD PLACE #45",
			"50TH MARKET",
			"GROUND KONTROL CLASSIC AR",
			"KINGPINS - BEAVERTON - BO",
			"RANCH PIZZA",
		), models.CategoryEatingOut},
		{ContainsAny(
			"NORDSTROM",
			"FJAELLRAEVEN",
			"ON INC",
			"TOMMY BAHAMA 613",
			"WARBY PARKER",
			"BONOBOS",
			"VINTAGE SPORTS FASHION",
			"SP WADE AND WILLIAMS",
			"SP ANDAFTERTHAT",
		), models.CategoryClothes},
		{ContainsAny("ARSENAL"), models.CategoryArsenal},
		{ContainsAny(
			"EVERYDAY MUSIC",
			"CRITERION.COM",
			"BARNES&AMP;NOBLE PAPERSOURCE",
			"BARNES &AMP; NOBLE 2371",
			"MUSIC MILLENNIUM",
			"ARROW FILMS",
		), models.CategoryPhysicalMedia},
		{Equals("APPLE.COM/BILL"), models.CategoryAppleCloudStorage},
		{ContainsAny(
			"WARWICK ALLERTON HOTEL",
			"HOOD RIVER HOTEL",
			"AIRBNB * HMPSDMXX99",
			"COURTYARD BY MARRIOTT",
			"MARRIOTT SN FRAN MARQU",
			"BEST WESTERN PONDEROSA",
			"HILTON",
		), models.CategoryTravelLodging},
		{ContainsAny("ALASKA AIR", "UNITED ", "AMERICAN AIR"), models.CategoryFlights},
		{ContainsAny("PARKING"), models.CategoryParking},
		{ContainsAny("MODA CENTER"), models.CategoryModaCenter},
		{Equals("ROKU FOR WARNERMEDIA GLOB"), models.CategoryHBOSubscription},
		{ContainsAny("PORTLAND INDOOR SOCCE"), models.CategoryIndoorSoccer},
		{ContainsAny(
			"PENDLETON",
			"LULULEMON BRIDGEPORT",
			"HONEYFUND.COMGIFTCARDS",
			"SP KIRIKO",
			"SP BABYLIST",
			"SP WWW.POSHBABY.COM",
			"SQ *VIK ROASTERS",
			"SP ECRU MODERN STATI",
			"LS OBLATIONPAPERS.COM",
		), models.CategoryGifts},
		{ContainsAny(
			"PEARL HARDWARE",
			"CRATE &AMP; BARREL #454",
			"RESTORATION HARDWARE",
			"THE HOME DEPOT 4002",
			"WILLIAMS-SONOMA 6324",
			"KITCHEN KABOODLE",
		), models.CategoryHomeImprovement},
		{ContainsAny("GORGE PERFORMANCE", "SP TRAVELERSURFCLUB"), models.CategorySurfing},
		{ContainsAny("XBOX", "PLAYSTATION"), models.CategoryVideoGames},
		{ContainsAny("WILLAMETTE DRY"), models.CategoryDryCleaning},
		{ContainsAny("PRIME VIDEO", "GOOGLE *TV"), models.CategoryVODAmazon},
		{ContainsAny("GEICO"), models.CategoryCarInsurance},
		{ContainsAny(
			"LES SCHWAB TIRES #0243",
			"ODOT DMV2U",
			"DEQ VIP DEQ TOO",
		), models.CategoryCarMaintenance},
		{ContainsAny(
			"DNH*DOMAINS#3405924658",
			"GOOGLE *DOMAINS",
			"AMAZON WEB SERVICES",
			"DIGITALOCEAN.COM",
		), models.CategoryHostingProjects},
		{ContainsAny(
			"CLAUDE.AI SUBSCRIPTION",
			"CHATGPT SUBSCRIPTION",
			"OPENAI",
		), models.CategoryAISubscription},
		{ContainsAny("AMAZON PRIME"), models.CategoryAmazonPrime},
		{ContainsAny("AMAZON", "AMZN"), models.CategoryAmazonPurchase},
		{ContainsAny("CHESS.COM"), models.CategoryChessSubscription},
		{ContainsAny("TCGPLAYER", "MAKEPLAYINGCARDS"), models.CategoryMtG},
		{Equals("ROKU FOR PEACOCK TV LLC"), models.CategoryPeacockSubscription},
		{ContainsAny("GOOGLE *PARAMOUNT", "CBS MOBILE APP"), models.CategoryParamountSub},
		{ContainsAny("ASTRO", "SHELL", "76", "CHEVRON"), models.CategoryGas},
		{Equals("HRB ONLINE TAX PRODUCT"), models.CategoryFilingTaxes},
		{Equals("JEWELERS-MUTUAL-PMNT"), models.CategoryDiamondInsurance},
		{Equals("BLAZERVISION"), models.CategoryBlazerVision},
		{Equals("DUNCD ON PRIME"), models.CategoryPodcastSubscription},
		{ContainsAny("ARTS TAX"), models.CategoryPortlandArtsTax},
		{ContainsAny("OPAL CAMERA"), models.CategoryComputersTechnology},
		{ContainsAny("USPS PO", "FEDEX OFFIC"), models.CategoryShipping},
		{ContainsAny("RODEO"), models.CategoryRodeo},
		{ContainsAny("ENTERPRISE RENT", "AMTRAK"), models.CategoryOtherTransportation},
	})
}
