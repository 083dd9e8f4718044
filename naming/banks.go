package naming

// Word banks are read-only after package initialization.

var hueNames = map[HueFamily][]string{
	Red:    {"Crimson", "Scarlet", "Ruby", "Cherry", "Vermilion", "Cardinal", "Carmine", "Garnet", "Rosewood", "Cinnabar"},
	Orange: {"Tangerine", "Amber", "Apricot", "Copper", "Marigold", "Saffron", "Persimmon", "Rust", "Papaya", "Cantaloupe"},
	Yellow: {"Lemon", "Gold", "Canary", "Mustard", "Honey", "Butter", "Sunflower", "Citrine", "Maize", "Dandelion"},
	Green:  {"Emerald", "Jade", "Sage", "Olive", "Moss", "Fern", "Mint", "Pine", "Lime", "Juniper"},
	Blue:   {"Azure", "Cobalt", "Sapphire", "Cerulean", "Navy", "Teal", "Ocean", "Sky", "Indigo", "Lagoon"},
	Purple: {"Violet", "Amethyst", "Lavender", "Plum", "Orchid", "Mulberry", "Iris", "Grape", "Lilac", "Heather"},
	Pink:   {"Rose", "Blush", "Flamingo", "Magenta", "Fuchsia", "Peony", "Coral", "Salmon", "Bubblegum", "Carnation"},
}

var saturationWords = map[SaturationBand][]string{
	SaturationHigh:   {"Vivid", "Bold", "Electric", "Intense", "Radiant", "Brilliant", "Vibrant", "Saturated"},
	SaturationMedium: {"Soft", "Balanced", "Gentle", "Mellow", "Calm", "Tempered", "Easy", "Natural"},
	SaturationLow:    {"Muted", "Dusty", "Faded", "Smoky", "Hazy", "Subdued", "Weathered", "Ashen"},
}

var lightnessWords = map[LightnessBand][]string{
	LightnessDark:   {"Deep", "Midnight", "Shadow", "Dark", "Rich", "Moody", "Nocturnal", "Smoldering"},
	LightnessMedium: {"Classic", "True", "Pure", "Steady", "Grounded", "Clear", "Honest", "Even"},
	LightnessLight:  {"Pale", "Pastel", "Light", "Airy", "Misty", "Frosted", "Whisper", "Powder"},
}

var structureSuffixes = map[Structure][]string{
	StructureMonochromatic: {"Tones", "Shades", "Gradient", "Spectrum", "Scale", "Study"},
	StructureComplementary: {"Contrast", "Duet", "Balance", "Opposites", "Counterpoint", "Pairing"},
	StructureTriadic:       {"Trio", "Triad", "Triangle", "Trinity", "Chord", "Trilogy"},
	StructureTetradic:      {"Quartet", "Square", "Quadrant", "Compass", "Cross", "Foursome"},
	StructureAnalogous:     {"Harmony", "Flow", "Drift", "Cascade", "Current", "Medley"},
	StructureCustom:        {"Mix", "Palette", "Blend", "Story", "Collection", "Edit"},
}

var natureWords = []string{
	"Forest", "Meadow", "Canyon", "Glacier", "Reef", "Tundra", "Orchard", "Desert",
	"Rainforest", "Volcano", "Harbor", "Prairie", "Lagoon", "Summit", "Grove", "Delta",
}

var emotionWords = []string{
	"Serenity", "Euphoria", "Nostalgia", "Wonder", "Longing", "Delight", "Reverie", "Courage",
	"Bliss", "Melancholy", "Whimsy", "Tranquility", "Passion", "Solace", "Zest", "Awe",
}

var artWords = []string{
	"Bauhaus", "Impressionist", "Baroque", "Deco", "Nouveau", "Pop", "Fauvist", "Cubist",
	"Minimalist", "Renaissance", "Surrealist", "Rococo", "Modernist", "Ukiyo-e", "Memphis", "Brutalist",
}

var seasonWords = []string{
	"Spring", "Summer", "Autumn", "Winter", "Monsoon", "Solstice", "Equinox", "Harvest",
}

var placeWords = []string{
	"Kyoto", "Marrakesh", "Havana", "Santorini", "Reykjavik", "Lisbon", "Oaxaca", "Jaipur",
	"Amalfi", "Patagonia", "Provence", "Tulum", "Bali", "Sahara", "Nordic", "Riviera",
}

var gemstoneWords = []string{
	"Opal", "Topaz", "Onyx", "Pearl", "Quartz", "Tourmaline", "Peridot", "Lapis",
	"Agate", "Jasper", "Moonstone", "Obsidian", "Turquoise", "Malachite", "Spinel", "Zircon",
}

var timeWords = []string{
	"Dawn", "Dusk", "Twilight", "Noon", "Midnight", "Daybreak", "Sunset", "Afterglow",
}
