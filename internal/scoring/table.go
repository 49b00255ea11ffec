package scoring

// ruleTable is the static ingredient knowledge base. Entries are matched
// case-insensitively against OCR tokens; aliases cover the surface forms we
// have seen on real Indian and US packaging, including common OCR mangles.
// The table is append-only data, never mutated at runtime.
var ruleTable = []IngredientRecord{
	// Vegetables and whole foods
	{
		CanonicalName: "potato",
		Aliases:       []string{"potato", "potatoes"},
		Category:      CategoryVegetable,
		RiskTier:      RiskSafe,
		Description:   "Whole vegetable, safe for general consumption.",
	},
	{
		CanonicalName: "tomato",
		Aliases:       []string{"tomato", "tomatoes", "tomato paste", "tomato puree"},
		Category:      CategoryVegetable,
		RiskTier:      RiskSafe,
		Description:   "Whole vegetable, safe for general consumption.",
	},
	{
		CanonicalName: "onion",
		Aliases:       []string{"onion", "onion powder", "dried onion"},
		Category:      CategoryVegetable,
		RiskTier:      RiskSafe,
		Description:   "Whole vegetable, safe for general consumption.",
	},
	{
		CanonicalName: "garlic",
		Aliases:       []string{"garlic", "garlic powder"},
		Category:      CategoryVegetable,
		RiskTier:      RiskSafe,
		Description:   "Whole vegetable, safe for general consumption.",
	},
	{
		CanonicalName: "water",
		Aliases:       []string{"water", "purified water"},
		Category:      CategoryVegetable,
		RiskTier:      RiskSafe,
		Description:   "No health concerns.",
	},
	{
		CanonicalName: "cocoa",
		Aliases:       []string{"cocoa", "cocoa solids", "cocoa powder"},
		Category:      CategoryVegetable,
		RiskTier:      RiskLow,
		Description:   "Contains caffeine; otherwise benign.",
	},
	{
		CanonicalName: "vanilla",
		Aliases:       []string{"vanilla", "vanilla extract"},
		Category:      CategoryVegetable,
		RiskTier:      RiskSafe,
		Description:   "Flavouring with no known concerns.",
	},

	// Oils and fats
	{
		CanonicalName: "palmolein oil",
		Aliases:       []string{"palmolein oil", "palmolein", "pamolien oil", "edible pamolien oil", "palm olein"},
		Category:      CategoryOil,
		RiskTier:      RiskMedium,
		Description:   "Refined palm fraction, high in saturated fat.",
	},
	{
		CanonicalName: "palm oil",
		Aliases:       []string{"palm oil", "edible palm oil"},
		Category:      CategoryOil,
		RiskTier:      RiskMedium,
		Description:   "High saturated fat content.",
	},
	{
		CanonicalName: "peanut oil",
		Aliases:       []string{"peanut oil", "edible peanut oil", "groundnut oil"},
		Category:      CategoryOil,
		RiskTier:      RiskLow,
		AllergenTags:  []string{"peanut"},
		Description:   "Peanut-derived oil; an allergen for peanut-sensitive users.",
	},
	{
		CanonicalName: "sunflower oil",
		Aliases:       []string{"sunflower oil", "edible sunflower oil"},
		Category:      CategoryOil,
		RiskTier:      RiskLow,
		Description:   "Common refined vegetable oil.",
	},
	{
		CanonicalName: "vegetable oil",
		Aliases:       []string{"vegetable oil", "edible vegetable oil"},
		Category:      CategoryOil,
		RiskTier:      RiskLow,
		Description:   "Unspecified refined oil blend.",
	},
	{
		CanonicalName: "hydrogenated oil",
		Aliases:       []string{"hydrogenated oil", "hydrogenated vegetable oil", "partially hydrogenated", "partially hydrogenated oil"},
		Category:      CategoryOil,
		RiskTier:      RiskDangerous,
		Description:   "Source of trans fats linked to cardiovascular disease.",
	},
	{
		CanonicalName: "trans fat",
		Aliases:       []string{"trans fat", "trans fatty acids"},
		Category:      CategoryOil,
		RiskTier:      RiskDangerous,
		Description:   "Strongly associated with heart disease and stroke.",
	},
	{
		CanonicalName: "butter",
		Aliases:       []string{"butter", "clarified butter", "ghee"},
		Category:      CategoryDairy,
		RiskTier:      RiskLow,
		AllergenTags:  []string{"dairy"},
		Description:   "Dairy fat; high saturated fat, dairy allergen.",
	},

	// Salts and minerals
	{
		CanonicalName: "iodised salt",
		Aliases:       []string{"iodised salt", "iodized salt", "lodised salt", "lodized salt"},
		Category:      CategoryMineral,
		RiskTier:      RiskMedium,
		Description:   "Fortified salt; sodium intake should stay moderate.",
	},
	{
		CanonicalName: "salt",
		Aliases:       []string{"salt", "sea salt", "rock salt", "sodium chloride"},
		Category:      CategoryMineral,
		RiskTier:      RiskMedium,
		Description:   "High intake raises blood pressure.",
	},
	{
		CanonicalName: "sodium",
		Aliases:       []string{"sodium"},
		Category:      CategoryMineral,
		RiskTier:      RiskMedium,
		Description:   "High intake raises blood pressure.",
	},
	{
		CanonicalName: "calcium carbonate",
		Aliases:       []string{"calcium carbonate", "calcium"},
		Category:      CategoryMineral,
		RiskTier:      RiskSafe,
		Description:   "Mineral fortificant.",
	},

	// Sweeteners
	{
		CanonicalName: "sugar",
		Aliases:       []string{"sugar", "cane sugar", "sucrose"},
		Category:      CategorySweetener,
		RiskTier:      RiskMedium,
		Description:   "Added sugar; linked to diabetes and obesity in excess.",
	},
	{
		CanonicalName: "glucose",
		Aliases:       []string{"glucose", "glucose syrup", "dextrose"},
		Category:      CategorySweetener,
		RiskTier:      RiskMedium,
		Description:   "Fast-absorbing sugar, spikes blood glucose.",
	},
	{
		CanonicalName: "fructose",
		Aliases:       []string{"fructose"},
		Category:      CategorySweetener,
		RiskTier:      RiskMedium,
		Description:   "Excess intake is associated with fatty liver.",
	},
	{
		CanonicalName: "high fructose corn syrup",
		Aliases:       []string{"high fructose corn syrup", "hfcs"},
		Category:      CategorySweetener,
		RiskTier:      RiskHigh,
		Description:   "Concentrated fructose sweetener linked to obesity and liver damage.",
	},
	{
		CanonicalName: "corn syrup",
		Aliases:       []string{"corn syrup"},
		Category:      CategorySweetener,
		RiskTier:      RiskMedium,
		Description:   "Refined sugar syrup.",
	},
	{
		CanonicalName: "honey",
		Aliases:       []string{"honey"},
		Category:      CategorySweetener,
		RiskTier:      RiskLow,
		Description:   "Natural sweetener; still sugar.",
	},
	{
		CanonicalName: "jaggery",
		Aliases:       []string{"jaggery", "gur"},
		Category:      CategorySweetener,
		RiskTier:      RiskLow,
		Description:   "Unrefined cane sugar.",
	},
	{
		CanonicalName: "aspartame",
		Aliases:       []string{"aspartame"},
		Category:      CategoryAdditive,
		RiskTier:      RiskDangerous,
		Description:   "Artificial sweetener with contested neurological concerns.",
	},
	{
		CanonicalName: "sucralose",
		Aliases:       []string{"sucralose"},
		Category:      CategoryAdditive,
		RiskTier:      RiskHigh,
		Description:   "Artificial sweetener; may disrupt gut microbiome.",
	},
	{
		CanonicalName: "acesulfame potassium",
		Aliases:       []string{"acesulfame potassium", "acesulfame k", "ace-k"},
		Category:      CategoryAdditive,
		RiskTier:      RiskHigh,
		Description:   "Artificial sweetener with insulin-response concerns.",
	},

	// Dairy
	{
		CanonicalName: "milk",
		Aliases:       []string{"milk", "milk solids", "whole milk", "skimmed milk", "milk powder"},
		Category:      CategoryDairy,
		RiskTier:      RiskLow,
		AllergenTags:  []string{"dairy"},
		Description:   "Dairy; contains lactose and milk proteins.",
	},
	{
		CanonicalName: "cheese",
		Aliases:       []string{"cheese", "cheese powder"},
		Category:      CategoryDairy,
		RiskTier:      RiskLow,
		AllergenTags:  []string{"dairy"},
		Description:   "Dairy; high in sodium and saturated fat.",
	},
	{
		CanonicalName: "whey",
		Aliases:       []string{"whey", "whey protein", "whey powder"},
		Category:      CategoryDairy,
		RiskTier:      RiskLow,
		AllergenTags:  []string{"dairy"},
		Description:   "Milk-derived protein.",
	},
	{
		CanonicalName: "casein",
		Aliases:       []string{"casein", "caseinate"},
		Category:      CategoryDairy,
		RiskTier:      RiskLow,
		AllergenTags:  []string{"dairy"},
		Description:   "Milk protein.",
	},
	{
		CanonicalName: "cream",
		Aliases:       []string{"cream", "milk cream"},
		Category:      CategoryDairy,
		RiskTier:      RiskLow,
		AllergenTags:  []string{"dairy"},
		Description:   "Dairy fat.",
	},

	// Grains
	{
		CanonicalName: "wheat flour",
		Aliases:       []string{"wheat flour", "refined wheat flour", "maida", "atta", "whole wheat flour"},
		Category:      CategoryGrain,
		RiskTier:      RiskLow,
		AllergenTags:  []string{"gluten", "wheat"},
		Description:   "Contains gluten.",
	},
	{
		CanonicalName: "wheat",
		Aliases:       []string{"wheat"},
		Category:      CategoryGrain,
		RiskTier:      RiskLow,
		AllergenTags:  []string{"gluten", "wheat"},
		Description:   "Contains gluten.",
	},
	{
		CanonicalName: "rice",
		Aliases:       []string{"rice", "rice flour"},
		Category:      CategoryGrain,
		RiskTier:      RiskSafe,
		Description:   "Gluten-free grain.",
	},
	{
		CanonicalName: "oats",
		Aliases:       []string{"oats", "oat flour", "rolled oats"},
		Category:      CategoryGrain,
		RiskTier:      RiskSafe,
		Description:   "Whole grain, naturally high in fiber.",
	},
	{
		CanonicalName: "barley",
		Aliases:       []string{"barley", "barley malt", "malt extract"},
		Category:      CategoryGrain,
		RiskTier:      RiskLow,
		AllergenTags:  []string{"gluten"},
		Description:   "Contains gluten.",
	},
	{
		CanonicalName: "corn",
		Aliases:       []string{"corn", "corn flour", "maize", "corn starch", "cornstarch"},
		Category:      CategoryGrain,
		RiskTier:      RiskSafe,
		Description:   "Gluten-free grain.",
	},

	// Proteins
	{
		CanonicalName: "egg",
		Aliases:       []string{"egg", "eggs", "egg powder", "albumin"},
		Category:      CategoryProtein,
		RiskTier:      RiskLow,
		AllergenTags:  []string{"egg"},
		Description:   "Common allergen.",
	},
	{
		CanonicalName: "peanut",
		Aliases:       []string{"peanut", "peanuts", "groundnut"},
		Category:      CategoryProtein,
		RiskTier:      RiskLow,
		AllergenTags:  []string{"peanut"},
		Description:   "Major allergen.",
	},
	{
		CanonicalName: "almond",
		Aliases:       []string{"almond", "almonds"},
		Category:      CategoryProtein,
		RiskTier:      RiskSafe,
		AllergenTags:  []string{"tree nut"},
		Description:   "Tree nut allergen.",
	},
	{
		CanonicalName: "cashew",
		Aliases:       []string{"cashew", "cashews", "cashew nut"},
		Category:      CategoryProtein,
		RiskTier:      RiskSafe,
		AllergenTags:  []string{"tree nut"},
		Description:   "Tree nut allergen.",
	},
	{
		CanonicalName: "soy",
		Aliases:       []string{"soy", "soya", "soybean", "soy lecithin", "soya lecithin"},
		Category:      CategoryProtein,
		RiskTier:      RiskLow,
		AllergenTags:  []string{"soy"},
		Description:   "Common allergen, widely used as emulsifier.",
	},
	{
		CanonicalName: "fish",
		Aliases:       []string{"fish", "anchovy", "sardine"},
		Category:      CategoryProtein,
		RiskTier:      RiskLow,
		AllergenTags:  []string{"fish"},
		Description:   "Allergen; unsuitable for vegetarians.",
	},
	{
		CanonicalName: "gelatin",
		Aliases:       []string{"gelatin", "gelatine"},
		Category:      CategoryProtein,
		RiskTier:      RiskLow,
		Description:   "Animal-derived; unsuitable for vegetarians.",
	},
	{
		CanonicalName: "chicken",
		Aliases:       []string{"chicken", "chicken extract"},
		Category:      CategoryProtein,
		RiskTier:      RiskLow,
		Description:   "Meat; unsuitable for vegetarians.",
	},

	// Preservatives
	{
		CanonicalName: "sodium benzoate",
		Aliases:       []string{"sodium benzoate", "e211", "ins 211"},
		Category:      CategoryPreservative,
		RiskTier:      RiskHigh,
		Description:   "Can form benzene with vitamin C; linked to hyperactivity.",
	},
	{
		CanonicalName: "potassium sorbate",
		Aliases:       []string{"potassium sorbate", "e202", "ins 202"},
		Category:      CategoryPreservative,
		RiskTier:      RiskMedium,
		Description:   "Generally tolerated; occasional allergic reactions.",
	},
	{
		CanonicalName: "bht",
		Aliases:       []string{"bht", "butylated hydroxytoluene"},
		Category:      CategoryPreservative,
		RiskTier:      RiskDangerous,
		Description:   "Synthetic antioxidant with carcinogenicity concerns.",
	},
	{
		CanonicalName: "bha",
		Aliases:       []string{"bha", "butylated hydroxyanisole"},
		Category:      CategoryPreservative,
		RiskTier:      RiskDangerous,
		Description:   "Synthetic antioxidant with carcinogenicity concerns.",
	},
	{
		CanonicalName: "tbhq",
		Aliases:       []string{"tbhq", "tertiary butylhydroquinone"},
		Category:      CategoryPreservative,
		RiskTier:      RiskHigh,
		Description:   "Petroleum-derived preservative; nausea at high doses.",
	},
	{
		CanonicalName: "sodium nitrite",
		Aliases:       []string{"sodium nitrite", "e250", "ins 250"},
		Category:      CategoryPreservative,
		RiskTier:      RiskHigh,
		Description:   "Cured-meat preservative; forms nitrosamines when charred.",
	},

	// Additives and colours
	{
		CanonicalName: "monosodium glutamate",
		Aliases:       []string{"monosodium glutamate", "msg", "e621", "ins 621", "flavour enhancer 621"},
		Category:      CategoryAdditive,
		RiskTier:      RiskHigh,
		Description:   "Flavour enhancer; headaches and nausea in sensitive people.",
	},
	{
		CanonicalName: "caramel color",
		Aliases:       []string{"caramel color", "caramel colour", "e150", "ins 150"},
		Category:      CategoryAdditive,
		RiskTier:      RiskMedium,
		Description:   "Colouring; 4-MEI byproduct concerns.",
	},
	{
		CanonicalName: "red 40",
		Aliases:       []string{"red 40", "allura red", "e129", "ins 129"},
		Category:      CategoryAdditive,
		RiskTier:      RiskHigh,
		Description:   "Azo dye linked to hyperactivity in children.",
	},
	{
		CanonicalName: "yellow 6",
		Aliases:       []string{"yellow 6", "sunset yellow", "e110", "ins 110"},
		Category:      CategoryAdditive,
		RiskTier:      RiskHigh,
		Description:   "Azo dye linked to hyperactivity.",
	},
	{
		CanonicalName: "blue 1",
		Aliases:       []string{"blue 1", "brilliant blue", "e133", "ins 133"},
		Category:      CategoryAdditive,
		RiskTier:      RiskMedium,
		Description:   "Synthetic dye; occasional allergic reactions.",
	},
	{
		CanonicalName: "artificial flavour",
		Aliases:       []string{"artificial flavour", "artificial flavor", "artificial flavouring", "nature identical flavouring"},
		Category:      CategoryAdditive,
		RiskTier:      RiskMedium,
		Description:   "Unspecified synthetic flavouring.",
	},
	{
		CanonicalName: "emulsifier",
		Aliases:       []string{"emulsifier", "emulsifiers", "e471", "ins 471", "e322", "ins 322"},
		Category:      CategoryAdditive,
		RiskTier:      RiskMedium,
		Description:   "Processing aid; marker of ultra-processed food.",
	},
	{
		CanonicalName: "citric acid",
		Aliases:       []string{"citric acid", "e330", "ins 330", "acidity regulator 330"},
		Category:      CategoryAdditive,
		RiskTier:      RiskSafe,
		Description:   "Common acidity regulator, well tolerated.",
	},
	{
		CanonicalName: "ascorbic acid",
		Aliases:       []string{"ascorbic acid", "vitamin c", "e300", "ins 300"},
		Category:      CategoryAdditive,
		RiskTier:      RiskSafe,
		Description:   "Vitamin C used as antioxidant.",
	},

	// Spices
	{
		CanonicalName: "turmeric",
		Aliases:       []string{"turmeric", "turmeric powder", "haldi"},
		Category:      CategoryVegetable,
		RiskTier:      RiskSafe,
		Description:   "Spice with no known concerns.",
	},
	{
		CanonicalName: "chilli",
		Aliases:       []string{"chilli", "chili", "red chilli powder", "chilli powder"},
		Category:      CategoryVegetable,
		RiskTier:      RiskSafe,
		Description:   "Spice with no known concerns.",
	},
	{
		CanonicalName: "black pepper",
		Aliases:       []string{"black pepper", "pepper"},
		Category:      CategoryVegetable,
		RiskTier:      RiskSafe,
		Description:   "Spice with no known concerns.",
	},
	{
		CanonicalName: "sesame",
		Aliases:       []string{"sesame", "sesame seed", "sesame oil", "tahini", "til"},
		Category:      CategoryProtein,
		RiskTier:      RiskLow,
		AllergenTags:  []string{"sesame"},
		Description:   "Declared allergen in several jurisdictions.",
	},
}

// Table returns the full rule table. The returned slice must not be modified;
// callers needing a mutable copy (e.g. the database seeder) should copy it.
func Table() []IngredientRecord {
	return ruleTable
}
