package store

// Built-in gazetteer tables. Table order matters: FindInQuery and the
// category-wide recipes iterate in declaration order.

var cityTable = []Place{
	{
		Key: "almaty", Name: "Almaty", NativeName: "Алматы", Category: CategoryCity,
		Coordinates: []float64{76.9458, 43.2220},
		Description: "Kazakhstan's largest city and former capital, set against the Trans-Ili Alatau mountains.",
		City: &CityAttrs{
			Population: 2161000, Elevation: 800, AreaKm2: 683, Founded: 1854,
			Region: "Almaty Region", IsCapital: false,
			Industries: []string{"finance", "trade", "food processing", "machinery"},
			Landmarks: []Landmark{
				{Name: "Medeu Skating Rink", Kind: "sport", Coordinates: []float64{77.0565, 43.1575}},
				{Name: "Kok Tobe Hill", Kind: "viewpoint", Coordinates: []float64{76.9770, 43.2330}},
				{Name: "Ascension Cathedral", Kind: "architecture", Coordinates: []float64{76.9531, 43.2586}},
				{Name: "Shymbulak Ski Resort", Kind: "sport", Coordinates: []float64{77.0810, 43.1280}},
				{Name: "Central State Museum", Kind: "museum", Coordinates: []float64{76.9422, 43.2367}},
			},
		},
	},
	{
		Key: "astana", Name: "Astana", NativeName: "Астана", Category: CategoryCity,
		Coordinates: []float64{71.4491, 51.1801},
		Description: "The capital of Kazakhstan on the Ishim river, known for bold modern architecture and harsh steppe winters.",
		City: &CityAttrs{
			Population: 1423000, Elevation: 350, AreaKm2: 810, Founded: 1830,
			Region: "Akmola Region", IsCapital: true,
			Industries: []string{"government", "construction", "transport", "energy"},
			Landmarks: []Landmark{
				{Name: "Baiterek Tower", Kind: "monument", Coordinates: []float64{71.4306, 51.1283}},
				{Name: "Khan Shatyr", Kind: "architecture", Coordinates: []float64{71.4030, 51.1326}},
				{Name: "Hazrat Sultan Mosque", Kind: "architecture", Coordinates: []float64{71.4715, 51.1252}},
				{Name: "Nur Alem Sphere", Kind: "architecture", Coordinates: []float64{71.4163, 51.0894}},
			},
		},
	},
	{
		Key: "shymkent", Name: "Shymkent", NativeName: "Шымкент", Category: CategoryCity,
		Coordinates: []float64{69.5958, 42.3417},
		Description: "Kazakhstan's third city of republican significance, an ancient Silk Road stop in the warm south.",
		City: &CityAttrs{
			Population: 1184000, Elevation: 512, AreaKm2: 1170, Founded: 1365,
			Region: "Turkistan Region", IsCapital: false,
			Industries: []string{"oil refining", "metallurgy", "textiles", "pharmaceuticals"},
			Landmarks: []Landmark{
				{Name: "Independence Park", Kind: "park", Coordinates: []float64{69.5900, 42.3510}},
				{Name: "Shymkent Zoo", Kind: "park", Coordinates: []float64{69.6180, 42.3640}},
			},
		},
	},
	{
		Key: "aktobe", Name: "Aktobe", NativeName: "Ақтөбе", Category: CategoryCity,
		Coordinates: []float64{57.1722, 50.2839},
		Description: "Industrial hub of western Kazakhstan, a center of chrome and ferroalloy production.",
		City: &CityAttrs{
			Population: 500000, Elevation: 250, AreaKm2: 300, Founded: 1869,
			Region: "Aktobe Region", IsCapital: false,
			Industries: []string{"ferroalloys", "chromium", "oil and gas", "machinery"},
			Landmarks: []Landmark{
				{Name: "Nur Gasyr Mosque", Kind: "architecture", Coordinates: []float64{57.2070, 50.2970}},
			},
		},
	},
	{
		Key: "karaganda", Name: "Karaganda", NativeName: "Қарағанды", Category: CategoryCity,
		Coordinates: []float64{73.1022, 49.8047},
		Description: "Coal-mining capital of central Kazakhstan, built around the Karaganda coal basin.",
		City: &CityAttrs{
			Population: 497000, Elevation: 550, AreaKm2: 550, Founded: 1934,
			Region: "Karaganda Region", IsCapital: false,
			Industries: []string{"coal mining", "metallurgy", "machinery"},
			Landmarks: []Landmark{
				{Name: "Miners' Culture Palace", Kind: "architecture", Coordinates: []float64{73.0880, 49.8020}},
			},
		},
	},
	{
		Key: "atyrau", Name: "Atyrau", NativeName: "Атырау", Category: CategoryCity,
		Coordinates: []float64{51.9200, 46.8500},
		Description: "Oil capital of Kazakhstan at the mouth of the Ural river, below sea level on the Caspian shore.",
		City: &CityAttrs{
			Population: 290000, Elevation: -20, AreaKm2: 210, Founded: 1640,
			Region: "Atyrau Region", IsCapital: false,
			Industries: []string{"oil and gas", "petrochemicals", "fishing"},
			Landmarks: []Landmark{
				{Name: "Ural River Embankment", Kind: "park", Coordinates: []float64{51.9120, 46.8470}},
			},
		},
	},
	{
		Key: "aktau", Name: "Aktau", NativeName: "Ақтау", Category: CategoryCity,
		Coordinates: []float64{51.1667, 43.6500},
		Description: "Kazakhstan's only seaport city, on the Caspian coast of the Mangystau peninsula.",
		City: &CityAttrs{
			Population: 183000, Elevation: 8, AreaKm2: 78, Founded: 1963,
			Region: "Mangystau Region", IsCapital: false,
			Industries: []string{"port logistics", "oil and gas", "uranium processing"},
			Landmarks: []Landmark{
				{Name: "Caspian Promenade", Kind: "park", Coordinates: []float64{51.1530, 43.6350}},
			},
		},
	},
	{
		Key: "taraz", Name: "Taraz", NativeName: "Тараз", Category: CategoryCity,
		Coordinates: []float64{71.3667, 42.9000},
		Description: "One of the oldest cities in Kazakhstan, a two-thousand-year-old Silk Road settlement.",
		City: &CityAttrs{
			Population: 357000, Elevation: 610, AreaKm2: 188, Founded: 400,
			Region: "Jambyl Region", IsCapital: false,
			Industries: []string{"chemicals", "phosphates", "food processing"},
			Landmarks: []Landmark{
				{Name: "Aisha Bibi Mausoleum", Kind: "architecture", Coordinates: []float64{71.2190, 42.8340}},
			},
		},
	},
	{
		Key: "pavlodar", Name: "Pavlodar", NativeName: "Павлодар", Category: CategoryCity,
		Coordinates: []float64{76.9667, 52.3000},
		Description: "Industrial city on the Irtysh river in northeastern Kazakhstan, home to aluminium and refining plants.",
		City: &CityAttrs{
			Population: 353000, Elevation: 123, AreaKm2: 400, Founded: 1720,
			Region: "Pavlodar Region", IsCapital: false,
			Industries: []string{"aluminium", "oil refining", "energy"},
			Landmarks: []Landmark{
				{Name: "Mashhur Jusup Mosque", Kind: "architecture", Coordinates: []float64{76.9540, 52.2870}},
			},
		},
	},
	{
		Key: "temirtau", Name: "Temirtau", NativeName: "Теміртау", Category: CategoryCity,
		Coordinates: []float64{72.9589, 50.0547},
		Description: "Steel town north of Karaganda, dominated by the country's largest metallurgical combine.",
		City: &CityAttrs{
			Population: 181000, Elevation: 400, AreaKm2: 300, Founded: 1905,
			Region: "Karaganda Region", IsCapital: false,
			Industries: []string{"steel", "metallurgy", "chemicals"},
			Landmarks: []Landmark{
				{Name: "Samarkand Reservoir", Kind: "nature", Coordinates: []float64{72.9200, 50.0800}},
			},
		},
	},
}

var glacierTable = []Place{
	{
		Key: "tuyuksu", Name: "Tuyuksu", NativeName: "Тұйықсу", Category: CategoryGlacier,
		Coordinates: []float64{77.0750, 43.0430},
		Description: "Reference glacier of the Trans-Ili Alatau with one of the longest mass-balance records in Central Asia.",
		Glacier: &GlacierAttrs{
			AreaKm2: 2.3, LengthKm: 2.6, ElevationM: 3478,
			Status: GlacierRetreating, RetreatMYear: 14.5, MountainRange: "Trans-Ili Alatau",
		},
	},
	{
		Key: "bogatyr", Name: "Bogatyr", NativeName: "Богатырь", Category: CategoryGlacier,
		Coordinates: []float64{77.9167, 43.0500},
		Description: "Large valley glacier in the upper Issyk gorge, feeding the Chilik river system.",
		Glacier: &GlacierAttrs{
			AreaKm2: 30.3, LengthKm: 9.1, ElevationM: 3900,
			Status: GlacierStable, RetreatMYear: 3.2, MountainRange: "Trans-Ili Alatau",
		},
	},
	{
		Key: "korzhenevsky", Name: "Korzhenevsky", NativeName: "Коржневский", Category: CategoryGlacier,
		Coordinates: []float64{77.6167, 43.0833},
		Description: "The largest glacier of the Trans-Ili Alatau, source of the Southeast Talgar river.",
		Glacier: &GlacierAttrs{
			AreaKm2: 38.0, LengthKm: 11.7, ElevationM: 4100,
			Status: GlacierRetreating, RetreatMYear: 9.8, MountainRange: "Trans-Ili Alatau",
		},
	},
	{
		Key: "dmitriev", Name: "Dmitriev", NativeName: "Дмитриева", Category: CategoryGlacier,
		Coordinates: []float64{77.0833, 43.0667},
		Description: "Cirque-valley glacier in the Left Talgar basin, monitored since the 1950s.",
		Glacier: &GlacierAttrs{
			AreaKm2: 17.0, LengthKm: 6.4, ElevationM: 3720,
			Status: GlacierRetreating, RetreatMYear: 11.3, MountainRange: "Trans-Ili Alatau",
		},
	},
	{
		Key: "shokalsky", Name: "Shokalsky", NativeName: "Шокальского", Category: CategoryGlacier,
		Coordinates: []float64{77.2333, 43.1000},
		Description: "Rapidly thinning glacier in the Middle Talgar basin, flagged by recent Landsat surveys.",
		Glacier: &GlacierAttrs{
			AreaKm2: 12.6, LengthKm: 5.2, ElevationM: 3650,
			Status: GlacierCritical, RetreatMYear: 22.7, MountainRange: "Trans-Ili Alatau",
		},
	},
}

var riverTable = []Place{
	{
		Key: "irtysh", Name: "Irtysh", NativeName: "Ертіс", Category: CategoryRiver,
		Coordinates: []float64{77.0, 51.5},
		Description: "The longest river crossing Kazakhstan, flowing from the Altai mountains northwest into Russia.",
		River: &RiverAttrs{
			LengthKm: 4248, DischargeM3s: 2150, BasinKm2: 1643000, Mouth: "Ob river",
			Path: [][]float64{
				{85.0, 47.5}, {83.4, 48.0}, {82.5, 49.0}, {80.3, 50.4},
				{78.5, 51.5}, {76.97, 52.30}, {75.5, 53.3}, {73.0, 54.0},
			},
		},
	},
	{
		Key: "ural", Name: "Ural", NativeName: "Жайық", Category: CategoryRiver,
		Coordinates: []float64{51.5, 49.0},
		Description: "River marking the conventional Europe-Asia boundary, draining to the Caspian Sea through Atyrau.",
		River: &RiverAttrs{
			LengthKm: 2428, DischargeM3s: 400, BasinKm2: 231000, Mouth: "Caspian Sea",
			Path: [][]float64{
				{55.1, 51.5}, {53.5, 51.2}, {51.37, 51.23}, {51.9, 50.0},
				{51.6, 48.6}, {51.8, 47.6}, {51.92, 46.85}, {51.62, 46.53},
			},
		},
	},
	{
		Key: "syr_darya", Name: "Syr Darya", NativeName: "Сырдария", Category: CategoryRiver,
		Coordinates: []float64{63.0, 44.5},
		Description: "Major Central Asian river feeding the North Aral Sea, heavily drawn down for irrigation.",
		River: &RiverAttrs{
			LengthKm: 2212, DischargeM3s: 700, BasinKm2: 782000, Mouth: "North Aral Sea",
			Path: [][]float64{
				{68.8, 40.9}, {67.5, 41.6}, {66.0, 42.5}, {64.9, 43.5},
				{63.2, 44.3}, {61.9, 45.2}, {61.0, 45.9}, {60.8, 46.2},
			},
		},
	},
	{
		Key: "ili", Name: "Ili", NativeName: "Іле", Category: CategoryRiver,
		Coordinates: []float64{77.5, 44.0},
		Description: "Transboundary river from the Tian Shan that sustains Lake Balkhash and its delta wetlands.",
		River: &RiverAttrs{
			LengthKm: 1439, DischargeM3s: 480, BasinKm2: 140000, Mouth: "Lake Balkhash",
			Path: [][]float64{
				{80.4, 44.0}, {79.3, 43.9}, {78.4, 43.9}, {77.5, 44.1},
				{76.5, 44.6}, {75.7, 45.2}, {74.9, 45.6}, {74.3, 45.9},
			},
		},
	},
	{
		Key: "ishim", Name: "Ishim", NativeName: "Есіл", Category: CategoryRiver,
		Coordinates: []float64{69.0, 52.5},
		Description: "Steppe river looping through Astana and Petropavl before joining the Irtysh in Siberia.",
		River: &RiverAttrs{
			LengthKm: 2450, DischargeM3s: 56, BasinKm2: 177000, Mouth: "Irtysh river",
			Path: [][]float64{
				{70.5, 50.7}, {71.45, 51.18}, {70.9, 51.9}, {69.9, 52.6},
				{69.15, 53.28}, {68.9, 54.3}, {69.4, 55.2},
			},
		},
	},
}

var lakeTable = []Place{
	{
		Key: "balkhash", Name: "Balkhash", NativeName: "Балқаш", Category: CategoryLake,
		Coordinates: []float64{74.8, 46.2},
		Description: "One of Asia's largest lakes, famously half fresh and half saline either side of the Saryesik peninsula.",
		Lake: &LakeAttrs{AreaKm2: 16400, MaxDepthM: 26, Saline: true, VolumeKm3: 106},
	},
	{
		Key: "alakol", Name: "Alakol", NativeName: "Алакөл", Category: CategoryLake,
		Coordinates: []float64{81.75, 46.10},
		Description: "Saline lake near the Dzungarian Gate, a Ramsar wetland and summer resort.",
		Lake: &LakeAttrs{AreaKm2: 2650, MaxDepthM: 54, Saline: true, VolumeKm3: 58.6},
	},
	{
		Key: "zaysan", Name: "Zaysan", NativeName: "Зайсан", Category: CategoryLake,
		Coordinates: []float64{84.0, 48.0},
		Description: "Ancient freshwater lake on the upper Irtysh, now merged with the Bukhtarma reservoir.",
		Lake: &LakeAttrs{AreaKm2: 1810, MaxDepthM: 15, Saline: false, VolumeKm3: 53},
	},
	{
		Key: "kaindy", Name: "Kaindy", NativeName: "Қайыңды", Category: CategoryLake,
		Coordinates: []float64{78.4661, 42.9847},
		Description: "Landslide-dammed mountain lake famous for its drowned spruce forest.",
		Lake: &LakeAttrs{AreaKm2: 0.2, MaxDepthM: 21, Saline: false, VolumeKm3: 0.002},
	},
	{
		Key: "big_almaty_lake", Name: "Big Almaty Lake", NativeName: "Үлкен Алматы көлі", Category: CategoryLake,
		Coordinates: []float64{76.9850, 43.0553},
		Description: "Alpine reservoir above Almaty supplying the city's drinking water.",
		Lake: &LakeAttrs{AreaKm2: 0.38, MaxDepthM: 40, Saline: false, VolumeKm3: 0.014},
	},
}
