package lexicon

// Default returns the built-in vocabulary covering US monetary policy
// and labor market events against the major asset classes seen in
// financial news headlines. The tables are data only; callers must
// Compile before use.
func Default() *Lexicon {
	return &Lexicon{
		Version:    "1.0",
		Events:     defaultEvents(),
		Assets:     defaultAssets(),
		Mechanisms: defaultMechanisms(),
		Movement:   defaultMovement(),
		Causal:     defaultCausal(),
	}
}

func defaultEvents() map[string]*Event {
	return map[string]*Event{
		"rate_cut": {
			DisplayName: "US Rate Cut",
			Keywords: []string{
				"rate cut", "rate cuts", "rate cut bets", "rate cut hopes",
				"rate cut optimism", "rate cut view", "rate cut outlook",
				"rate cut speculation", "fed cut", "us rate cut", "rate cut doubts",
				"rate cut fears", "rate reduction", "rate easing", "rate cut looms",
				"rate cut anticipated", "rate cut expected", "rate cut possibility",
				"rate cut ideas", "emergency rate cut",
			},
		},
		"rate_hike": {
			DisplayName: "US Rate Hike",
			Keywords: []string{
				"rate hike", "rate hikes", "rate increase", "rate rise",
				"fed hike", "hike outlook", "hike path", "rate tightening",
				"taper", "tapering", "qe taper", "quantitative easing",
			},
		},
		"employment": {
			DisplayName: "US Employment Data",
			Keywords: []string{
				"nonfarm payrolls", "nonfarm payroll", "payrolls", "payroll",
				"jobs report", "employment report", "employment data",
				"unemployment rate", "jobless rate", "unemployment data", "jobs data",
				"labor market", "labour market", "employment",
				"nfp", "jolts", "adp", "jobless claims", "unemployment",
				"labor market data", "employment growth", "job growth",
				"hiring", "layoffs", "wage growth", "wages",
				"job loss", "job gains", "job losses", "jobs added",
				"unemployment figure", "employment situation", "establishment data",
				"initial jobless claims", "continuing claims", "claims data",
				"labor force participation", "participation rate",
				"underemployment", "discouraged workers",
				"job openings", "quit rate", "quits data",
				"staffing", "labor supply", "worker shortage",
			},
			Qualifiers: &Qualifier{
				Strong: []string{
					`strong.*job`, `robust.*job`, `blowout.*job`, `solid.*job`,
					`upbeat.*job`, `upbeat.*employment`, `upbeat.*labor`,
					`beat.*expect`, `exceed.*expect`, `better.*than.*expect`,
					`stronger.*than.*expect`, `surprise.*job`, `stunning.*job`,
					`tight.*labor`, `labor.*tight`, `labor.*improv`,
					`claims.*fall`, `claims.*drop`, `claims.*declin`,
					`payrolls?.*beat`, `payrolls?.*exceed`, `jobs?.*beat`,
					`jobs.*added`, `employment.*growth`,
					`labor.*resilient`, `labor.*robust`, `labor.*strength`,
					`robust.*hiring`, `strong.*hiring`,
					`healthy.*labor`, `healthy.*employment`,
					`nonfarm.*rise`, `payroll.*rise`,
				},
				Weak: []string{
					`weak.*job`, `soft.*job`, `tepid.*job`, `disappointing.*job`,
					`dismal.*job`, `grim.*job`, `miss.*expect`, `below.*expect`,
					`worse.*than.*expect`, `weaker.*than.*expect`, `fell.*short`,
					`labor.*weaken`, `labor.*soft`, `labor.*cool`, `labor.*slack`,
					`employment.*weaken`, `employment.*disappoint`,
					`claims.*rise`, `claims.*jump`, `claims.*climb`, `claims.*surge`,
					`jobless.*rate.*rise`, `job.*loss`, `jobs.*lost`,
					`payrolls?.*miss`, `jobs?.*miss`, `payrolls?.*disappoint`,
					`weak.*hiring`, `soft.*hiring`, `hiring.*slow`,
					`labor.*deteriorat`, `employment.*deteriorat`,
					`sluggish.*labor`, `sluggish.*employment`,
				},
				Mixed: []string{
					`mixed.*job`, `mixed.*employment`, `mixed.*labor`,
				},
			},
		},
	}
}

func defaultAssets() map[string]*Asset {
	return map[string]*Asset{
		"gold":   {DisplayName: "Gold", Type: "Commodity", Keywords: []string{"gold", "bullion", "xau"}},
		"silver": {DisplayName: "Silver", Type: "Commodity", Keywords: []string{"silver", "xag"}},

		"dollar":          {DisplayName: "US Dollar", Type: "Currency", Keywords: []string{"dollar", "usd", "greenback", "dlr", "dxy", "us dollar"}},
		"euro":            {DisplayName: "Euro", Type: "Currency", Keywords: []string{"euro", "eur"}},
		"yen":             {DisplayName: "Japanese Yen", Type: "Currency", Keywords: []string{"yen", "jpy"}},
		"pound":           {DisplayName: "British Pound", Type: "Currency", Keywords: []string{"pound", "gbp", "sterling", "cable"}},
		"peso":            {DisplayName: "Mexican Peso", Type: "Currency", Keywords: []string{"peso", "mxn"}},
		"real":            {DisplayName: "Brazilian Real", Type: "Currency", Keywords: []string{"real", "brl"}},
		"canadian_dollar": {DisplayName: "Canadian Dollar", Type: "Currency", Keywords: []string{"canadian dollar", "c$", "loonie", "cad"}},
		"aussie":          {DisplayName: "Australian Dollar", Type: "Currency", Keywords: []string{"aussie", "australian dollar", "aud"}},
		"franc":           {DisplayName: "Swiss Franc", Type: "Currency", Keywords: []string{"franc", "chf", "swiss franc"}},
		"krona":           {DisplayName: "Swedish Krona", Type: "Currency", Keywords: []string{"krona", "sek"}},
		"rand":            {DisplayName: "South African Rand", Type: "Currency", Keywords: []string{"rand", "zar", "south african rand"}},

		"treasury":      {DisplayName: "US Treasuries", Type: "FixedIncome", Keywords: []string{"treasury", "treasuries", "t-bond", "t-bonds", "govt bond", "government bond"}},
		"stock_market":  {DisplayName: "Stock Market", Type: "EquityMarket", Keywords: []string{"stock market", "equity market", "equities"}},
		"risk_appetite": {DisplayName: "Risk Appetite", Type: "MarketSentiment", Keywords: []string{"risk appetite", "risk-seeking", "appetite for risk"}},
		"safe_haven":    {DisplayName: "Safe Haven Assets", Type: "AssetClass", Keywords: []string{"safe haven", "flight to quality", "safe assets", "flight to safety"}},

		"market_general": {DisplayName: "Financial Markets (General)", Type: "EquityMarket", Keywords: []string{"market", "markets", "trading", "bourses", "exchanges", "wall st", "main street"}},
		"investors":      {DisplayName: "Market Investors/Traders", Type: "MarketParticipant", Keywords: []string{"investors", "investor", "trader", "traders", "fund", "funds", "asset managers"}},
		"shares_general": {DisplayName: "Equity Shares (General)", Type: "EquityMarket", Keywords: []string{"shares", "share", "stocks", "stock"}},
		"companies":      {DisplayName: "Corporate Sector", Type: "Corporate", Keywords: []string{"companies", "company", "firms", "firm", "corporate", "corporates", "business", "businesses"}},
		"tech_sector":    {DisplayName: "Technology Sector", Type: "EquitySector", Keywords: []string{"tech", "technology", "apple", "microsoft", "google", "amazon", "meta", "facebook", "tesla", "nvidia", "semiconductor", "chip"}},

		"stocks":       {DisplayName: "Global Stocks", Type: "EquityMarket", Keywords: []string{"stocks", "shares", "equity", "wall street", "wall st"}},
		"reit":         {DisplayName: "REITs", Type: "EquitySector", Keywords: []string{"reit", "reits", "real estate"}},
		"homebuilders": {DisplayName: "Homebuilders", Type: "EquitySector", Keywords: []string{"homebuilders", "homebuilder", "home builders"}},
		"futures":      {DisplayName: "Index Futures", Type: "EquityMarket", Keywords: []string{"futures", "index futures", "stock futures", "equity futures", "e-mini"}},
		"etfs":         {DisplayName: "Exchange-Traded Funds", Type: "EquityMarket", Keywords: []string{"etf", "etfs", "exchange traded fund", "exchange-traded"}},
		"indexes":      {DisplayName: "Market Indexes", Type: "EquityIndex", Keywords: []string{"indexes", "indices", "market indexes", "market indices"}},

		"sp500":  {DisplayName: "S&P 500", Type: "EquityIndex", Keywords: []string{"s&p 500", "s&p", "spx", "sp500"}},
		"dow":    {DisplayName: "Dow Jones Industrial Average", Type: "EquityIndex", Keywords: []string{"dow", "djia", "dow jones"}},
		"nasdaq": {DisplayName: "Nasdaq Composite", Type: "EquityIndex", Keywords: []string{"nasdaq"}},
		"nikkei": {DisplayName: "Nikkei 225", Type: "EquityIndex", Keywords: []string{"nikkei"}},
		"ftse":   {DisplayName: "FTSE 100", Type: "EquityIndex", Keywords: []string{"ftse"}},
		"dax":    {DisplayName: "DAX (Germany)", Type: "EquityIndex", Keywords: []string{"dax", "german dax"}},
		"cac":    {DisplayName: "CAC 40 (France)", Type: "EquityIndex", Keywords: []string{"cac", "cac 40"}},
		"ibex":   {DisplayName: "IBEX 35 (Spain)", Type: "EquityIndex", Keywords: []string{"ibex"}},
		"asx":    {DisplayName: "ASX (Australia)", Type: "EquityIndex", Keywords: []string{"asx", "australian shares"}},

		"seoul_stocks":  {DisplayName: "Seoul Stock Market", Type: "RegionalEquity", Keywords: []string{"seoul shares", "seoul stocks"}},
		"brazil_stocks": {DisplayName: "Brazilian Stocks", Type: "RegionalEquity", Keywords: []string{"brazil stocks", "brazilian stocks", "bovespa", "brazil"}},
		"mexico_stocks": {DisplayName: "Mexican Stocks", Type: "RegionalEquity", Keywords: []string{"mexico stocks", "mexican stocks", "mexico"}},
		"hk_stocks":     {DisplayName: "Hong Kong Stocks", Type: "RegionalEquity", Keywords: []string{"hk shares", "hong kong shares", "hk stocks", "hang seng"}},
		"china_stocks":  {DisplayName: "Chinese Stocks", Type: "RegionalEquity", Keywords: []string{"china stocks", "shanghai", "shenzhen"}},
		"india_stocks":  {DisplayName: "Indian Stocks", Type: "RegionalEquity", Keywords: []string{"india stocks", "sensex", "nse"}},
		"asia_stocks": {DisplayName: "Asian Stocks", Type: "RegionalEquity", Keywords: []string{
			"asian shares", "asian stocks", "asia shares", "asia stocks",
			"asia up", "asia down", "asia gains", "asia rises", "asia falls",
			"se asia", "southeast asia",
		}},
		"europe_stocks": {DisplayName: "European Stocks", Type: "RegionalEquity", Keywords: []string{"europe shares", "europe stocks", "european shares", "european stocks"}},
		"uk_stocks":     {DisplayName: "UK Stocks", Type: "RegionalEquity", Keywords: []string{"uk shares", "uk stocks", "british shares"}},
		"canada_stocks": {DisplayName: "Canadian Stocks", Type: "RegionalEquity", Keywords: []string{"canadian stocks", "tsx"}},

		"bonds":          {DisplayName: "Bonds/Treasuries", Type: "FixedIncome", Keywords: []string{"bonds", "treasuries", "debt", "treasury", "gilt", "bund", "bond market"}},
		"ust2y":          {DisplayName: "2-Year Treasury Yield", Type: "FixedIncome", Keywords: []string{"2-year", "2y", "2-yr", "two-year yield"}},
		"ust10y":         {DisplayName: "10-Year Treasury Yield", Type: "FixedIncome", Keywords: []string{"10-year", "10y", "10-yr", "ten-year yield"}},
		"ust30y":         {DisplayName: "30-Year Treasury Yield", Type: "FixedIncome", Keywords: []string{"30-year", "30y", "thirty-year yield"}},
		"credit_spreads": {DisplayName: "Credit Spreads", Type: "FixedIncome", Keywords: []string{"credit spreads", "credit default swaps", "cds"}},

		"emerging_markets": {DisplayName: "Emerging Markets", Type: "AssetClass", Keywords: []string{"emerging markets", "emerging debt", "em", "latam", "em fx"}},
		"yields":           {DisplayName: "Treasury Yields", Type: "FixedIncome", Keywords: []string{"yields", "yield", "treasury yield", "yield curve"}},
		"currencies":       {DisplayName: "Foreign Exchange", Type: "AssetClass", Keywords: []string{"currencies", "currency", "forex", "fx"}},
		"commodities":      {DisplayName: "Commodities", Type: "AssetClass", Keywords: []string{"commodities", "commodity"}},
		"crude":            {DisplayName: "Crude Oil", Type: "Commodity", Keywords: []string{"crude", "oil", "wti", "brent", "nymex"}},
		"copper":           {DisplayName: "Copper", Type: "Commodity", Keywords: []string{"copper", "copper futures"}},
		"gasoline":         {DisplayName: "Gasoline", Type: "Commodity", Keywords: []string{"gasoline", "rbob"}},

		"vix": {DisplayName: "VIX (Volatility Index)", Type: "VolatilityIndex", Inverse: true, Keywords: []string{
			"vix", "fear gauge", "fear index", "volatility index", "cboe volatility",
			"fear meter", "wall st's fear", "wall street's fear",
		}},
		"sentiment":  {DisplayName: "Market Sentiment", Type: "MarketSentiment", Keywords: []string{"sentiment", "investor sentiment", "market sentiment", "risk sentiment"}},
		"confidence": {DisplayName: "Market Confidence", Type: "MarketSentiment", Keywords: []string{"confidence", "investor confidence", "business confidence"}},
		"fear":       {DisplayName: "Market Fear", Type: "MarketSentiment", Keywords: []string{"fear", "fear index", "fear gauge", "fear meter"}},

		"equity_market":        {DisplayName: "Equity Markets", Type: "EquityMarket", Keywords: []string{"equity market", "equity markets"}},
		"bond_market":          {DisplayName: "Bond Markets", Type: "FixedIncome", Keywords: []string{"bond market", "bond markets"}},
		"mortgage_rates":       {DisplayName: "Mortgage Rates", Type: "FixedIncome", Keywords: []string{"mortgage rates", "mortgage market"}},
		"financial_conditions": {DisplayName: "Financial Conditions", Type: "MacroIndicator", Keywords: []string{"financial conditions", "credit conditions"}},

		"cyclical_stocks":  {DisplayName: "Cyclical Stocks", Type: "EquitySector", Keywords: []string{"cyclical stocks", "cyclicals"}},
		"defensive_stocks": {DisplayName: "Defensive Stocks", Type: "EquitySector", Keywords: []string{"defensive stocks", "defensive sectors"}},

		"financials": {DisplayName: "Financial Sector", Type: "EquitySector", Keywords: []string{"financials", "banks", "banking", "financial sector", "financial stocks"}},
		"tech":       {DisplayName: "Technology Sector", Type: "EquitySector", Keywords: []string{"tech", "technology", "technology sector", "semiconductor", "chip stocks"}},
		"retail":     {DisplayName: "Retail Sector", Type: "EquitySector", Keywords: []string{"retail", "retail sector", "retail stocks", "department stores"}},
		"energy":     {DisplayName: "Energy Sector", Type: "EquitySector", Keywords: []string{"energy", "energy sector", "oil stocks", "energy stocks"}},
		"healthcare": {DisplayName: "Healthcare Sector", Type: "EquitySector", Keywords: []string{"healthcare", "pharma", "biotech"}},
		"consumer":   {DisplayName: "Consumer Sector", Type: "EquitySector", Keywords: []string{"consumer", "consumer staples", "consumer discretionary"}},

		"small_caps": {DisplayName: "Small Cap Stocks (Russell 2000)", Type: "EquityIndex", Keywords: []string{"small cap", "smallcap", "small-cap", "russell 2000", "russell", "small caps"}},
		"crypto":     {DisplayName: "Cryptocurrency", Type: "DigitalAsset", Keywords: []string{"crypto", "cryptocurrency", "bitcoin", "btc", "digital currency", "digital asset"}},
	}
}

func defaultMechanisms() map[string]*Mechanism {
	return map[string]*Mechanism{
		"mech:ahead_of_jobs_report": {
			Name: "Ahead of Jobs Report",
			Type: "Expectation_Timing",
			Patterns: []string{
				`ahead of.*?(jobs report|employment data|nonfarm payrolls|nfp|unemployment)`,
				`before.*?(jobs report|employment data|nonfarm payrolls|payroll)`,
				`(awaits?|awaiting|eyes on).*?(jobs report|employment data|payroll)`,
				`(jobs report|employment data|payroll).*(looms|on tap|in focus|due|expected)`,
				`watch.*?(jobs report|employment data|payroll)`,
				`ahead.*?(labor market|employment)`,
			},
		},
		"mech:after_jobs_report": {
			Name: "After Jobs Report",
			Type: "Expectation_Timing",
			Patterns: []string{
				`after.*?(jobs report|employment data|nonfarm payrolls|nfp)`,
				`on.*?(jobs report|employment data|nonfarm payrolls)`,
				`following.*?(jobs report|employment data|payroll)`,
				`post-?(jobs report|employment)`,
			},
		},
		"mech:rate_cut_bets": {
			Name: "Rate Cut Expectations (Positive)",
			Type: "Policy_Expectation",
			Patterns: []string{
				`rate cut (hopes?|bets?|speculation|optimism|view|outlook|ideas|odds?)`,
				`(hopes?|bets?|expects?|sees?|pins?)\s+(for|on).*?rate cut`,
				`rate cut expectations?`,
				`(cut.*?chances?|chances?.*?cut)`,
				`(trimmed?|pared?|cut|slash).*?rate (hike|increase)`,
			},
		},
		"mech:rate_cut_fears": {
			Name: "Rate Cut Concerns (Negative)",
			Type: "Policy_Expectation",
			Patterns: []string{
				`rate cut (doubts?|fears?|concerns?|skepticism|dim)`,
				`(reduce|dim|fade).*?(cut.*?chances?|rate cut)`,
			},
		},
		"mech:rate_hike_bets": {
			Name: "Rate Hike Expectations",
			Type: "Policy_Expectation",
			Patterns: []string{
				`rate hike (hopes?|bets?|odds?|expectations?)`,
				`hike (odds?|chances?|expectations?)`,
				`(boost|raise|lift).*?(hike|tightening)`,
			},
		},
		"mech:hawkish_repricing": {
			Name: "Hawkish Policy Repricing",
			Type: "Policy_Repricing",
			Patterns: []string{
				`(sparks?|ignites?|fuels?|stokes?|renews?).*(inflation|rate hike|hike|tightening)`,
				`(cements?|keeps?|supports?|puts).*on.*hike (path|track)`,
				`hike (jitters|worries|concerns|fears)`,
				`(reduce|dim|pare|fade).*(cut.*?chances?|cut.*?odds?)`,
				`(keeps?|supports?|bolsters?).*hike`,
			},
		},
		"mech:dovish_repricing": {
			Name: "Dovish Policy Repricing",
			Type: "Policy_Repricing",
			Patterns: []string{
				`(boost|lift|raise|increase|sees?|spurs?).*(cut.*?chances?|cut.*?odds?|cut.*?bets)`,
				`path to.*?cuts? (clearer|stronger)`,
				`(dovish|easing|accommodative).*(tone|tilt|pivot|shift)`,
				`(supports?|fuels?).*fed rate cut`,
			},
		},
		"mech:tight_labor_market": {
			Name: "Tight Labor Market",
			Type: "Labor_State",
			Patterns: []string{
				`tight(ening)?\s+(labor|labour)\s+market`,
				`(labor|labour)\s+market\s+tighten(s|ing)?`,
				`full\s+(strength|employment)`,
				`robust\s+(labor|labour)\s+market`,
				`resilient\s+(labor|labour)\s+market`,
				`(strong|resilient|robust).*hiring`,
			},
		},
		"mech:weak_labor_market": {
			Name: "Weak Labor Market",
			Type: "Labor_State",
			Patterns: []string{
				`weak(ening)?\s+(labor|labour)\s+market`,
				`soft\s+(labor|labour)\s+market`,
				`cooling\s+(labor|labour)\s+market`,
				`(labor|labour)\s+market\s+(struggles?|woes|concerns)`,
				`ebbing.*?momentum`,
				`slowing.*?(labor|labour|hiring)`,
				`(disappointing|dismal|gloomy)\s+(labor|labour|employment)`,
			},
		},
		"mech:unemployment_low": {
			Name: "Low Unemployment Rate",
			Type: "Labor_State",
			Patterns: []string{
				`(unemployment|jobless).*?(falls?|drops?|declines?|hits?.*?(low|year|decade))`,
				`(unemployment|jobless).*?(3\.[0-9]|4\.[0-9]|5\.[0-9])%`,
			},
		},
		"mech:unemployment_high": {
			Name: "High Unemployment Rate",
			Type: "Labor_State",
			Patterns: []string{
				`(unemployment|jobless).*?(rises?|climbs?|jumps?|hits?.*?(high|peak))`,
				`(unemployment|jobless).*?(8\.|9\.|10\.|11\.)[0-9]%`,
			},
		},
		"mech:wage_pressure": {
			Name: "Wage Pressure/Growth",
			Type: "Macro_Channel",
			Patterns: []string{
				`wage(s)?.*?(growth|pressure|rise|increase)`,
				`(rising|strong).*?wage`,
				`(pay|salary|compensation).*?(rise|increase)`,
			},
		},
	}
}

func defaultMovement() map[Bucket][]string {
	return map[Bucket][]string{
		StrongPositive: {
			"surge", "soar", "rally", "jump", "spike", "boom", "explode", "rocket",
			"blowout", "smashing", "crushing", "stellar", "bullish", "beat",
			"crushed expectations", "stronger than expected", "vault", "catapult",
			"skyrocket", "leap",
		},
		BucketPositive: {
			"gain", "rise", "climb", "advance", "improve", "boost", "up", "higher",
			"support", "lift", "strengthen", "firm", "extend gains", "rebound",
			"better than", "outperform", "exceed", "cheer", "edge up",
			"inches higher", "ticks higher", "nudge higher", "firmer", "firms",
			"add", "adds", "push higher", "rising", "buoy", "buoys", "lifted",
			"extend", "extends", "strengthens", "rose", "gained",
			"advanced", "rallied", "climbed", "improved", "boosted",
		},
		WeakPositive: {
			"inch up", "recover", "trim losses", "pare losses",
			"stabilize", "steady", "hold", "moderate gains", "tick up",
			"nudge up", "creep up", "drift higher", "hold gains",
		},
		StrongNegative: {
			"plunge", "crash", "collapse", "tumble", "slammed", "crushed", "sink",
			"tanked", "hammered", "battered", "selloff", "massacre", "bloodbath",
			"dismal", "gloomy", "grim", "bleak", "slump", "crater", "nosedive",
			"dive", "plummet", "crumble",
		},
		BucketNegative: {
			"fall", "drop", "decline", "slip", "slide", "down", "lower", "weaken",
			"bruised", "wounded", "hit", "off", "dip", "ease", "soften", "pressure",
			"bearish", "miss", "disappoint", "worse than", "underperform", "sinks",
			"falls", "drops", "declines", "slips", "slides", "weakens", "eases",
			"dips", "softens", "shed", "sheds", "trim", "trims", "pare", "pares",
			"give back", "gives back", "pull back", "pulls back", "lose", "loses",
			"lost", "erode", "erodes", "sag", "sags", "wane", "wanes", "falter",
			"falters", "stumble", "stumbles", "buckle", "buckles", "slipped",
			"dropped", "fell", "declined", "weakened", "eased", "dipped", "sagged",
			"erased", "erase", "erases",
		},
		WeakNegative: {
			"edge down", "pare gains", "retreat", "modest decline", "consolidate",
			"pullback", "correction", "cautious", "wary", "inch down", "tick down",
			"nudge lower", "drift lower", "creep down", "retreats",
		},
		BucketNeutral: {
			"flat", "stable", "unchanged", "mixed", "choppy", "volatile",
			"little changed", "narrowly", "range-bound", "muted", "subdued", "hover",
			"hovers", "linger", "lingers", "treading water", "consolidates",
			"hold steady", "holds steady", "remain flat", "remains flat",
			"stay flat", "stays flat",
		},
	}
}

func defaultCausal() []*CausalRule {
	return []*CausalRule{
		{
			Name:             "explicit_on_after",
			Pattern:          `(on|after|following|amid)\s+.*?(rate cut|fed cut|jobs report|employment data|nonfarm payrolls)`,
			RequiresMovement: true,
			Priority:         10,
		},
		{
			Name:             "explicit_due_to",
			Pattern:          `(due to|thanks to|because of|as a result of)\s+.*?(rate cut|fed cut|jobs report|employment)`,
			RequiresMovement: true,
			Priority:         10,
		},
		{
			Name:     "event_causes_asset",
			Pattern:  `(rate cut|fed cut|jobs report|employment data)\s+(boosts?|sends?|drives?|pushes?|lifts?|supports?|weighs on|hurts?|hits?|pressures?)`,
			Priority: 10,
		},
		{
			Name:     "opens_door_to",
			Pattern:  `(opens? (the )?door (to|for)|paves? (the )?way (to|for)|clears? path (to|for)|signals?|suggests?)\s+.*?(rate (hike|cut)|fed (hike|cut)|policy)`,
			Priority: 10,
		},
		{
			Name:     "reveals_shows",
			Pattern:  `(reveals?|shows?|indicates?|suggests?|signals?)\s+.*?(economy|growth|labor|employment)`,
			Priority: 9,
		},
		{
			Name:             "generic_market_reaction",
			Pattern:          `(stock market|equities?|shares|market)\s+(reacts?|responds?|opens?|closes?)\s+(higher|lower|up|down)\s+.*?(jobs|employment|rate)`,
			RequiresMovement: true,
			Priority:         9,
		},
		{
			Name:     "sentiment_lift_dip",
			Pattern:  `(sentiment|confidence|mood)\s+(lift|dip|surge|fall|rises?|drops?)\s+.*?(jobs|employment)`,
			Priority: 9,
		},
		{
			Name:             "fear_gauge_inverse",
			Pattern:          `(fear gauge|vix|volatility)\s+(dips?|falls?|rises?|spikes?)\s+.*?(jobs|employment|rate cut)`,
			RequiresMovement: true,
			Priority:         8,
		},
		{
			Name:     "asset_movement_on_event",
			Pattern:  `(stocks?|dollar|bond|gold|yield|market|shares?|equit|treasur)\s+(rose?|fell|climbed|dropped|gained|lost|rallied|slumped|surged|plunged|advanced|declined|weakened|strengthened)\s+(on|after|following|as|amid|with)\s+.*(jobs?|employment|payroll|rate|fed|labor|labour)`,
			Priority: 10,
		},
		{
			Name:     "asset_direction_ahead",
			Pattern:  `(stocks?|dollar|bond|gold|yield|market|shares?)\s+(higher|lower|up|down|rise|fall|gain|decline)\s+(ahead of|before|awaiting?|eyes? on|focus.* on)`,
			Priority: 10,
		},
		{
			Name:     "movement_despite_event",
			Pattern:  `(stocks?|dollar|bond|gold|yield|market|shares?)\s+(rose?|gained|climbed|advanced|rallied).*(despite|even as|notwithstanding|shrugs? off)`,
			Priority: 9,
		},
		{
			Name:             "event_quality_causes_movement",
			Pattern:          `(strong|weak|better|worse|upbeat|disappointing|solid|tepid|robust|dismal|blowout)\s+(jobs?|employment|payroll|labor|labour)\s+(report|data|reading|numbers?)`,
			RequiresMovement: true,
			Priority:         10,
		},
		{
			Name:             "simple_asset_event_cooccurrence",
			Pattern:          `(stocks?|dollar|bond|market|shares?).*(jobs?|employment|payroll|rate\s+cut|rate\s+hike)`,
			RequiresMovement: true,
			Priority:         7,
		},
		{
			Name:     "event_sends_asset_direction",
			Pattern:  `(jobs?|employment|payroll|rate|fed|data|report|reading).*(send|push|drive|lift|weigh|pull|drag|boost).*(stocks?|dollar|bond|gold|market|shares?).*(higher|lower|up|down)`,
			Priority: 9,
		},
		{
			Name:     "asset_reacts_to_event",
			Pattern:  `(stocks?|dollar|bond|market|shares?)\s+(react|respond|move|swing|sway|shift).*(jobs?|employment|payroll|rate|fed)`,
			Priority: 8,
		},
		{
			Name:             "movement_as_expectation",
			Pattern:          `(as|while)\s+.*?(rate cut|jobs report|employment)\s+(hopes?|bets?|expectations?|optimism|speculation|doubts?|fears?)`,
			RequiresMovement: true,
			Priority:         9,
		},
		{
			Name:     "event_quality_reaction",
			Pattern:  `(strong|weak|disappointing|better|worse|blowout|dismal|upbeat)\s+.*?(jobs report|employment).*?(send|lift|weigh|boost|hurt)\s+\w+\s+(higher|lower)`,
			Priority: 8,
		},
		{
			Name:             "movement_before",
			Pattern:          `(before|ahead of|awaiting?|anticipating?)\s+.*?(rate cut|jobs report|employment data)`,
			RequiresMovement: true,
			Priority:         8,
		},
		{
			Name:             "eyes_on",
			Pattern:          `(eyes? on|focuses? on|watch(es|ing)?|awaits?)\s+.*?(jobs report|employment data|rate decision|fed)`,
			RequiresMovement: true,
			Priority:         8,
		},
		{
			Name:     "lifts_dips_sentiment",
			Pattern:  `(lifts?|dips?|boosts?|weighs? on|dampens?|supports?|hurts?)\s+(sentiment|mood|confidence|optimism)`,
			Priority: 9,
		},
		{
			Name:     "event_sends_direction",
			Pattern:  `(rate cut|jobs report|employment)\s+(hopes?|bets?|data)?\s+(send|push|drive|lift)\s+\w+\s+(higher|lower|up|down)`,
			Priority: 7,
		},
		{
			Name:     "asset_move_ahead_event",
			Pattern:  `(stocks?|dollar|bond|gold|market|yen|euro|crude)\s+(rise|fall|rally|plunge|surge|slide).*?(ahead of|before|as|awaiting)\s+.*?(jobs report|employment|rate cut)`,
			Priority: 7,
		},
		{
			Name:     "policy_expectations_impact",
			Pattern:  `(rate cut|rate hike|fed policy|monetary policy)\s+(hopes?|bets?|speculation|fears?)\s+(lift|weigh|boost|hit|hurt)\s+\w+\s+(higher|lower)`,
			Priority: 7,
		},
		{
			Name:     "direct_asset_event_link",
			Pattern:  `(dollar|stocks?|bond|gold|yield|crude|yen)\s+(strength|weakness|gain|loss).*?(on|amid|after)\s+(rate cut|jobs report)`,
			Priority: 6,
		},
		{
			Name:             "simple_before_after_jobs",
			Pattern:          `(before|after|ahead of|following|post).*?(jobs?|employment|payroll|labor|labour)`,
			RequiresMovement: true,
			Priority:         7,
		},
		{
			Name:             "asset_event_simple_cooccur",
			Pattern:          `(stock|bond|market|dollar|gold|yield|crude|shares?|equit).*(jobs?|employment|payroll|unemployment|labor|labour)`,
			RequiresMovement: true,
			Priority:         6,
		},
		{
			Name:             "event_asset_simple_cooccur",
			Pattern:          `(jobs?|employment|payroll|unemployment|labor|labour).*(stock|bond|market|dollar|gold|yield|crude|shares?|equit)`,
			RequiresMovement: true,
			Priority:         6,
		},
		{
			Name:     "set_to_open_pattern",
			Pattern:  `(set to|seen|expected|poised|likely to)\s+(open|close|move|rise|fall)`,
			Priority: 7,
		},
		{
			Name:     "keeps_on_track",
			Pattern:  `(keeps?|puts?|maintains?).*(on track|on course|on path)`,
			Priority: 7,
		},
	}
}
