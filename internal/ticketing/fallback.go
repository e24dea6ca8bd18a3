package ticketing

func price(v float64) *float64 { return &v }

// Fallback returns a fresh copy of the curated mountain programmes served
// whenever the Discovery API is unavailable.
func Fallback() []Event {
	events := make([]Event, len(fallbackEvents))
	for i, ev := range fallbackEvents {
		ev.Genres = append([]string(nil), ev.Genres...)
		ev.PriceMin = price(*ev.PriceMin)
		ev.PriceMax = price(*ev.PriceMax)
		events[i] = ev
	}
	return events
}

var fallbackEvents = []Event{
	{
		ID: "ALTAI2026BEL", Name: "Altai. Belukha Trail EXP",
		City: "Gorno-Altaysk", Country: "Russia",
		Address: "Tyungur eco station, Ust-Koksa district", Venue: "Katun Sky Camp",
		Timezone: "Asia/Barnaul",
		Image:    "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?w=1600&auto=format&fit=crop",
		PriceMin: price(1190), PriceMax: price(1490), Currency: "USD",
		Classification: "mountain", Genres: []string{"Mountain", "Tracking", "Russia"},
		StartDate: "2026-06-14", EndDate: "2026-06-24", StartTime: "08:30",
		URL:         "https://mikola-travel.example/altai-belukha",
		Description: "An 11-day programme with acclimatisation on the Three Lakes plateau, glacier walks to Akkem and a Katun rafting finale. Nights are split between chalets, heated tents and a guesthouse.",
		Lat:         "50.1067", Lng: "86.9953", DurationDays: 11,
	},
	{
		ID: "SVANETI2026GEO", Name: "Georgia. Svaneti and Ushguli",
		City: "Mestia", Country: "Georgia",
		Address: "5 Lakhamula St, Mestia", Venue: "Tetnuldi Rise boutique hotel",
		Timezone: "Asia/Tbilisi",
		Image:    "https://images.unsplash.com/photo-1476041800959-2f6bb412c8ce?w=1600&auto=format&fit=crop",
		PriceMin: price(980), PriceMax: price(1280), Currency: "USD",
		Classification: "mountain", Genres: []string{"Mountain", "Culture", "Georgia"},
		StartDate: "2026-07-02", EndDate: "2026-07-10", StartTime: "09:00",
		URL:         "https://mikola-travel.example/svaneti",
		Description: "Nine days of Svan towers, the Chalaadi glacier and a jeep ride to Ushguli, the highest village in Europe, with supras hosted by local families.",
		Lat:         "43.0451", Lng: "42.7265", DurationDays: 9,
	},
	{
		ID: "PAMIR2026KGZ", Name: "Kyrgyzstan. Lenin Peak BaseCamp",
		City: "Osh", Country: "Kyrgyzstan",
		Address: "17 Masaliev Ave, Osh (pickup office)", Venue: "Achik-Tash yurt camp",
		Timezone: "Asia/Bishkek",
		Image:    "https://images.unsplash.com/photo-1500534314209-a25ddb2bd429?w=1600&auto=format&fit=crop",
		PriceMin: price(1490), PriceMax: price(1990), Currency: "USD",
		Classification: "mountain", Genres: []string{"Expedition", "Pamir", "Acclimatization"},
		StartDate: "2026-07-18", EndDate: "2026-08-01", StartTime: "07:45",
		URL:         "https://mikola-travel.example/pamirstage",
		Description: "A fifteen-day expedition stage to Camp 1 of Lenin Peak with a gradual acclimatisation schedule, yurt base camp and a doctor on the team.",
		Lat:         "39.3390", Lng: "72.7343", DurationDays: 15,
	},
	{
		ID: "ARARAT2026ARM", Name: "Armenia. Ararat Circle 60+",
		City: "Yerevan", Country: "Armenia",
		Address: "14 Abovyan St, Yerevan", Venue: "Cascade Light hotel",
		Timezone: "Asia/Yerevan",
		Image:    "https://images.unsplash.com/photo-1500534310682-0670a3f56d81?w=1600&auto=format&fit=crop",
		PriceMin: price(870), PriceMax: price(1090), Currency: "USD",
		Classification: "mountain", Genres: []string{"Soft Trek", "Culture", "Armenia"},
		StartDate: "2026-05-12", EndDate: "2026-05-20", StartTime: "10:00",
		URL:         "https://mikola-travel.example/ararat60",
		Description: "A gentle nine-day loop built for travellers over sixty: Khor Virap at sunrise, Lake Sevan, Dilijan forest walks and evenings in Yerevan.",
		Lat:         "40.1792", Lng: "44.4991", DurationDays: 9,
	},
	{
		ID: "PYRENEES2026ESP", Name: "Spain. Pyrenees Camino del Cielo",
		City: "Barbastro", Country: "Spain",
		Address: "Refugio de Gabardito, Huesca", Venue: "Refugio del Cielo",
		Timezone: "Europe/Madrid",
		Image:    "https://images.unsplash.com/photo-1502082553048-f009c37129b9?w=1600&auto=format&fit=crop",
		PriceMin: price(1320), PriceMax: price(1680), Currency: "EUR",
		Classification: "mountain", Genres: []string{"Trek", "Pyrenees", "Spain"},
		StartDate: "2026-09-04", EndDate: "2026-09-13", StartTime: "08:00",
		URL:         "https://mikola-travel.example/camino-cielo",
		Description: "Ten days hut to hut through Ordesa and Monte Perdido with luggage transfers, Aragonese dinners and a rest day in Ainsa.",
		Lat:         "42.6834", Lng: "0.1252", DurationDays: 10,
	},
	{
		ID: "DOLOMITI2026ITA", Name: "Italy. Dolomites Alta Via Relax",
		City: "Cortina d'Ampezzo", Country: "Italy",
		Address: "Via Roma 45, Cortina", Venue: "Hotel Cristallo Trail",
		Timezone: "Europe/Rome",
		Image:    "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=1600&auto=format&fit=crop",
		PriceMin: price(1520), PriceMax: price(1890), Currency: "EUR",
		Classification: "mountain", Genres: []string{"Via Ferrata", "Italy", "Wellness"},
		StartDate: "2026-07-11", EndDate: "2026-07-19", StartTime: "09:15",
		URL:         "https://mikola-travel.example/dolomiti",
		Description: "Sections of the Alta Via 1 walked with day packs, an easy via ferrata at Cinque Torri and spa evenings back in Cortina.",
		Lat:         "46.5405", Lng: "12.1357", DurationDays: 9,
	},
	{
		ID: "PATAGONIA2026CHL", Name: "Chile. Torres del Paine W+Ice",
		City: "Puerto Natales", Country: "Chile",
		Address: "Puerto Natales, Manuel Bulnes 236", Venue: "Grey Lights eco lodge",
		Timezone: "America/Punta_Arenas",
		Image:    "https://images.unsplash.com/photo-1500534312191-6722050c5f4c?w=1600&auto=format&fit=crop",
		PriceMin: price(1990), PriceMax: price(2590), Currency: "USD",
		Classification: "mountain", Genres: []string{"Patagonia", "Glacier", "Chile"},
		StartDate: "2026-11-06", EndDate: "2026-11-16", StartTime: "07:30",
		URL:         "https://mikola-travel.example/patagonia-w",
		Description: "The classic W trek in eleven days plus an ice walk on the Grey glacier, with refugio nights and a boat crossing of Lake Pehoe.",
		Lat:         "-51.6723", Lng: "-72.5056", DurationDays: 11,
	},
	{
		ID: "ANNAPURNA2026NPL", Name: "Nepal. Annapurna Panorama Light",
		City: "Pokhara", Country: "Nepal",
		Address: "Lakeside Rd 6, Pokhara", Venue: "Boutique Lake View",
		Timezone: "Asia/Kathmandu",
		Image:    "https://images.unsplash.com/photo-1489515217757-5fd1be406fef?w=1600&auto=format&fit=crop",
		PriceMin: price(1380), PriceMax: price(1750), Currency: "USD",
		Classification: "mountain", Genres: []string{"Himalaya", "Tea House", "Nepal"},
		StartDate: "2026-10-05", EndDate: "2026-10-17", StartTime: "06:45",
		URL:         "https://mikola-travel.example/annapurna-light",
		Description: "Twelve days of tea-house trekking to Poon Hill and Mardi Himal viewpoint, with porters carrying the bags and a lakeside finish in Pokhara.",
		Lat:         "28.2096", Lng: "83.9856", DurationDays: 12,
	},
	{
		ID: "ATLAS2026MAR", Name: "Morocco. High Atlas Summits",
		City: "Imlil", Country: "Morocco",
		Address: "Imlil Center, High Atlas", Venue: "Kasbah Atlas Lodge",
		Timezone: "Africa/Casablanca",
		Image:    "https://images.unsplash.com/photo-1500534312119-1c58b7b6ee4d?w=1600&auto=format&fit=crop",
		PriceMin: price(1180), PriceMax: price(1440), Currency: "EUR",
		Classification: "mountain", Genres: []string{"Atlas", "Culture", "Morocco"},
		StartDate: "2026-03-08", EndDate: "2026-03-16", StartTime: "08:00",
		URL:         "https://mikola-travel.example/atlas",
		Description: "Berber villages, mule-supported valleys and an optional Toubkal summit day, closing with two nights in a Marrakech riad.",
		Lat:         "31.1317", Lng: "-7.9216", DurationDays: 9,
	},
	{
		ID: "KILI2026TZA", Name: "Tanzania. Kilimanjaro Lemosho Comfort",
		City: "Moshi", Country: "Tanzania",
		Address: "Shantytown Rd, Moshi", Venue: "Kibo View Hotel",
		Timezone: "Africa/Dar_es_Salaam",
		Image:    "https://images.unsplash.com/photo-1454496522488-7a8e488e8606?w=1600&auto=format&fit=crop",
		PriceMin: price(2350), PriceMax: price(2890), Currency: "USD",
		Classification: "mountain", Genres: []string{"Summit", "Africa", "Safari"},
		StartDate: "2026-01-15", EndDate: "2026-01-26", StartTime: "07:00",
		URL:         "https://mikola-travel.example/kilimanjaro",
		Description: "The Lemosho route with an extra acclimatisation day, private toilet tents and a one-day Tarangire safari after the summit.",
		Lat:         "-3.3349", Lng: "37.3473", DurationDays: 11,
	},
	{
		ID: "LOFOTEN2026NOR", Name: "Norway. Lofoten Sky Cabins",
		City: "Svolvaer", Country: "Norway",
		Address: "Svolvaer Havn, Lofoten", Venue: "Aurora Sky Cabins",
		Timezone: "Europe/Oslo",
		Image:    "https://images.unsplash.com/photo-1482192505345-5655af888cc4?w=1600&auto=format&fit=crop",
		PriceMin: price(1860), PriceMax: price(2190), Currency: "EUR",
		Classification: "mountain", Genres: []string{"Arctic", "Northern Lights", "Norway"},
		StartDate: "2026-02-14", EndDate: "2026-02-22", StartTime: "10:30",
		URL:         "https://mikola-travel.example/lofoten",
		Description: "Winter hikes above the fjords, snowshoe days and northern lights watches from glass-roofed cabins in Svolvaer.",
		Lat:         "68.2345", Lng: "14.5683", DurationDays: 9,
	},
	{
		ID: "ALMATY2026KAZ", Name: "Kazakhstan. Tian Shan Alpine Escape",
		City: "Almaty", Country: "Kazakhstan",
		Address: "32 Tauelsizdik St, Almaty", Venue: "Alatau Wellness Resort",
		Timezone: "Asia/Almaty",
		Image:    "https://images.unsplash.com/photo-1465804575741-338df8554e02?w=1600&auto=format&fit=crop",
		PriceMin: price(960), PriceMax: price(1290), Currency: "USD",
		Classification: "mountain", Genres: []string{"Kazakhstan", "Glacier", "Wellness"},
		StartDate: "2026-06-01", EndDate: "2026-06-08", StartTime: "08:00",
		URL:         "https://mikola-travel.example/almaty",
		Description: "A week of day hikes from Almaty to Big Almaty Lake, the Tuyuksu glacier and Kolsai lakes, with a spa resort base.",
		Lat:         "43.2220", Lng: "76.8512", DurationDays: 7,
	},
	{
		ID: "LADAKH2026IND", Name: "India. High Ladakh and Tso Moriri",
		City: "Leh", Country: "India",
		Address: "Leh Bazaar Rd, Ladakh", Venue: "Heritage Stok Palace",
		Timezone: "Asia/Kolkata",
		Image:    "https://images.unsplash.com/photo-1482192597420-4817fdd7e8b0?w=1600&auto=format&fit=crop",
		PriceMin: price(1670), PriceMax: price(2090), Currency: "USD",
		Classification: "mountain", Genres: []string{"Himalaya", "Culture", "India"},
		StartDate: "2026-08-09", EndDate: "2026-08-20", StartTime: "09:30",
		URL:         "https://mikola-travel.example/ladakh",
		Description: "Monasteries of the Indus valley, the Khardung La pass and camps on the shores of Tso Moriri, paced for a slow climb in altitude.",
		Lat:         "34.1526", Lng: "77.5770", DurationDays: 12,
	},
	{
		ID: "COLORADO2026USA", Name: "USA. Colorado High Country 4x4",
		City: "Aspen", Country: "USA",
		Address: "Aspen Highlands Village, CO", Venue: "Basecamp Maroon Bells",
		Timezone: "America/Denver",
		Image:    "https://images.unsplash.com/photo-1500534314215-5f23a5cd5243?w=1600&auto=format&fit=crop",
		PriceMin: price(1890), PriceMax: price(2350), Currency: "USD",
		Classification: "mountain", Genres: []string{"Rockies", "Overland", "USA"},
		StartDate: "2026-07-25", EndDate: "2026-08-02", StartTime: "08:00",
		URL:         "https://mikola-travel.example/colorado",
		Description: "Jeep passes of the San Juans, Maroon Bells lake walks and ghost towns of the silver boom, with lodge nights along the way.",
		Lat:         "39.1911", Lng: "-106.8175", DurationDays: 9,
	},
	{
		ID: "JAPAN2026ALPS", Name: "Japan. Northern Alps and Onsen",
		City: "Matsumoto", Country: "Japan",
		Address: "Kamikochi Bus Terminal, Nagano", Venue: "Kamikochi Imperial Lodge",
		Timezone: "Asia/Tokyo",
		Image:    "https://images.unsplash.com/photo-1501785888041-af3ef285b470?w=1600&auto=format&fit=crop",
		PriceMin: price(2140), PriceMax: price(2590), Currency: "USD",
		Classification: "mountain", Genres: []string{"Japan Alps", "Onsen", "Gastronomy"},
		StartDate: "2026-09-16", EndDate: "2026-09-25", StartTime: "09:00",
		URL:         "https://mikola-travel.example/japan-alps",
		Description: "Kamikochi valley walks, the Tateyama Kurobe alpine route and ryokan nights with kaiseki dinners and hot springs.",
		Lat:         "36.2354", Lng: "137.6460", DurationDays: 10,
	},
}
