package store

import "github.com/mibon4ik/toyota-sub000/models"

// SeedParts returns the fixed catalog the storefront ships with. Prices are
// in tenge.
func SeedParts() []models.Part {
	return []models.Part{
		{
			ID:                 "1",
			Name:               "Передние тормозные колодки",
			Brand:              "Brembo",
			Price:              25000,
			ImageURL:           "/images/parts/brake-pads-front.jpg",
			Description:        "Керамические передние тормозные колодки с низким уровнем шума и пыли.",
			Category:           "Тормозная система",
			CompatibleVehicles: []string{"Toyota Camry 2018+", "Toyota RAV4 2019+"},
			SKU:                "BRM-P83-160",
			Stock:              24,
			Rating:             4.8,
			ReviewCount:        37,
		},
		{
			ID:                 "2",
			Name:               "Задние тормозные диски",
			Brand:              "TRW",
			Price:              38500,
			ImageURL:           "/images/parts/brake-discs-rear.jpg",
			Description:        "Вентилируемые задние тормозные диски с антикоррозийным покрытием.",
			Category:           "Тормозная система",
			CompatibleVehicles: []string{"Toyota Camry 2018+"},
			SKU:                "TRW-DF6421",
			Stock:              12,
			Rating:             4.6,
			ReviewCount:        19,
		},
		{
			ID:                 "3",
			Name:               "Масляный фильтр",
			Brand:              "Toyota",
			Price:              4500,
			ImageURL:           "/images/parts/oil-filter.jpg",
			Description:        "Оригинальный масляный фильтр Toyota.",
			Category:           "Фильтры",
			CompatibleVehicles: []string{"Most Toyota models"},
			SKU:                "04152-YZZA1",
			Stock:              80,
			Rating:             4.9,
			ReviewCount:        112,
		},
		{
			ID:                 "4",
			Name:               "Воздушный фильтр",
			Brand:              "MANN-FILTER",
			Price:              7200,
			ImageURL:           "/images/parts/air-filter.jpg",
			Description:        "Воздушный фильтр двигателя с высокой пылеёмкостью.",
			Category:           "Фильтры",
			CompatibleVehicles: []string{"Toyota Corolla 2013+", "Toyota Camry 2011+"},
			SKU:                "C26003",
			Stock:              45,
			Rating:             4.7,
			ReviewCount:        28,
		},
		{
			ID:                 "5",
			Name:               "Амортизатор передний",
			Brand:              "KYB",
			Price:              52000,
			ImageURL:           "/images/parts/shock-absorber-front.jpg",
			Description:        "Газомасляный передний амортизатор серии Excel-G.",
			Category:           "Подвеска",
			CompatibleVehicles: []string{"Toyota Camry 2012-2017"},
			SKU:                "KYB-339024",
			Stock:              8,
			Rating:             4.5,
			ReviewCount:        14,
		},
		{
			ID:                 "6",
			Name:               "Свечи зажигания (комплект 4 шт.)",
			Brand:              "Denso",
			Price:              16800,
			ImageURL:           "/images/parts/spark-plugs.jpg",
			Description:        "Иридиевые свечи зажигания, увеличенный ресурс.",
			Category:           "Электрика",
			CompatibleVehicles: []string{"Various models"},
			SKU:                "IK20TT-4",
			Stock:              60,
			Rating:             4.8,
			ReviewCount:        51,
		},
		{
			ID:                 "7",
			Name:               "Аккумулятор 60Ah",
			Brand:              "Bosch",
			Price:              64000,
			ImageURL:           "/images/parts/battery-60ah.jpg",
			Description:        "Необслуживаемый аккумулятор S4, обратная полярность.",
			Category:           "Электрика",
			CompatibleVehicles: []string{"Various models"},
			SKU:                "S4-005",
			Stock:              15,
			Rating:             4.6,
			ReviewCount:        33,
		},
		{
			ID:                 "8",
			Name:               "Ремень ГРМ",
			Brand:              "Gates",
			Price:              21500,
			ImageURL:           "/images/parts/timing-belt.jpg",
			Description:        "Усиленный ремень ГРМ с увеличенным сроком службы.",
			Category:           "Двигатель",
			CompatibleVehicles: []string{"Toyota Land Cruiser 2008+"},
			SKU:                "5680XS",
			Stock:              20,
			Rating:             4.7,
			ReviewCount:        9,
		},
		{
			ID:                 "9",
			Name:               "Моторное масло 5W-30 (4 л)",
			Brand:              "Toyota",
			Price:              18900,
			ImageURL:           "/images/parts/engine-oil-5w30.jpg",
			Description:        "Синтетическое моторное масло для бензиновых двигателей.",
			Category:           "Масла и жидкости",
			CompatibleVehicles: []string{"Most models"},
			SKU:                "08880-83717",
			Stock:              120,
			Rating:             4.9,
			ReviewCount:        86,
		},
		{
			ID:                 "10",
			Name:               "Салонный фильтр",
			Brand:              "Filtron",
			Price:              5400,
			ImageURL:           "/images/parts/cabin-filter.jpg",
			Description:        "Угольный салонный фильтр, защита от пыльцы и запахов.",
			Category:           "Фильтры",
			CompatibleVehicles: []string{"Toyota Camry 2018+", "Toyota Corolla 2019+"},
			SKU:                "K1335A",
			Stock:              50,
			Rating:             4.4,
			ReviewCount:        22,
		},
		{
			ID:                 "11",
			Name:               "Щётки стеклоочистителя (пара)",
			Brand:              "Denso",
			Price:              9800,
			ImageURL:           "/images/parts/wiper-blades.jpg",
			Description:        "Бескаркасные щётки стеклоочистителя 650/450 мм.",
			Category:           "Аксессуары",
			CompatibleVehicles: []string{"Various models"},
			SKU:                "DF-110",
			Stock:              70,
			Rating:             4.5,
			ReviewCount:        41,
		},
		{
			ID:                 "12",
			Name:               "Передняя фара (правая)",
			Brand:              "Koito",
			Price:              145000,
			ImageURL:           "/images/parts/headlight-right.jpg",
			Description:        "Оригинальная передняя фара с LED ближним светом.",
			Category:           "Кузов",
			CompatibleVehicles: []string{"Toyota Camry 2018-2020"},
			SKU:                "81110-33A70",
			Stock:              4,
			Rating:             4.9,
			ReviewCount:        7,
		},
	}
}
