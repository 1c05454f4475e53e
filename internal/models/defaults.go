// internal/models/defaults.go
package models

// DefaultBooks returns the fixed catalog used for first-boot seeding and for
// the admin "reset" operation. Returned as a fresh slice so callers can hand
// the rows to gorm without sharing state.
func DefaultBooks() []Book {
	return []Book{
		{
			ID:          "1",
			Title:       "Атлас анатомии человека",
			Author:      "Фрэнк Г. Неттер",
			Subject:     "Анатомия",
			Price:       4500,
			CoverImage:  "https://placehold.co/400x600/e2e8f0/1e293b?text=Netter+Atlas",
			SampleImage: "https://placehold.co/400x600/png?text=Anatomy+Map",
			Status:      BookStatusInStock,
			Category:    "Книги",
			Description: "Единственный атлас по анатомии, иллюстрированный врачами. Более 500 детализированных изображений.",
		},
		{
			ID:          "2",
			Title:       "Основы патологии заболеваний",
			Author:      "Роббинс, Котран",
			Subject:     "Патология",
			Price:       3200,
			CoverImage:  "https://placehold.co/400x600/fee2e2/991b1b?text=Robbins+Pathology",
			SampleImage: "https://placehold.co/400x600/png?text=Pathology+Sample",
			Status:      BookStatusInStock,
			Category:    "Книги",
			Description: "Золотой стандарт учебной литературы по патологии. Подробный разбор механизмов заболеваний.",
		},
		{
			ID:          "3",
			Title:       "Медицинская физиология",
			Author:      "Гайтон, Холл",
			Subject:     "Физиология",
			Price:       2800,
			CoverImage:  "https://placehold.co/400x600/dbeafe/1e40af?text=Guyton+Physiology",
			SampleImage: "https://placehold.co/400x600/png?text=Physiology+Graph",
			Status:      BookStatusOutOfStock,
			Category:    "Книги",
			Description: "Фундаментальный учебник по физиологии для студентов медицинских вузов.",
		},
		{
			ID:          "4",
			Title:       "ЭКГ за 10 минут",
			Subject:     "Кардиология",
			Price:       350,
			CoverImage:  "https://placehold.co/400x600/f3e8ff/6b21a8?text=ECG+Guide",
			SampleImage: "https://placehold.co/400x600/png?text=ECG+Strip",
			Status:      BookStatusInStock,
			Category:    "Книжки",
			Description: "Краткое карманное руководство по расшифровке электрокардиограммы.",
		},
		{
			ID:          "5",
			Title:       "Справочник лекарств 2024",
			Subject:     "Фармакология",
			Price:       450,
			CoverImage:  "https://placehold.co/400x600/ccfbf1/0f766e?text=Pharma+Guide",
			SampleImage: "https://placehold.co/400x600/png?text=Table+Sample",
			Status:      BookStatusInStock,
			Category:    "Книжки",
			Description: "Карманный справочник с актуальными дозировками и торговыми названиями.",
		},
		{
			ID:          "6",
			Title:       "Тетрадь А4 (96 л, клетка)",
			Subject:     "Канцелярия",
			Price:       180,
			CoverImage:  "https://placehold.co/400x600/f1f5f9/334155?text=Notebook+A4",
			SampleImage: "https://placehold.co/400x600/png?text=Grid+Paper",
			Status:      BookStatusInStock,
			Category:    "Тетради",
			Description: "Качественная бумага, твердая обложка, идеально для лекций.",
		},
		{
			ID:          "7",
			Title:       "Тетрадь 48 л (Анатомия)",
			Subject:     "Канцелярия",
			Price:       90,
			CoverImage:  "https://placehold.co/400x600/ffedd5/9a3412?text=Notebook+48",
			SampleImage: "https://placehold.co/400x600/png?text=Paper+Sample",
			Status:      BookStatusInStock,
			Category:    "Тетради",
			Description: "Тематическая обложка с анатомическими рисунками.",
		},
		{
			ID:          "8",
			Title:       "Ручка-шприц (Синяя)",
			Subject:     "Сувениры",
			Price:       120,
			CoverImage:  "https://placehold.co/400x600/e0f2fe/0369a1?text=Syringe+Pen",
			SampleImage: "https://placehold.co/400x600/png?text=Ink+Color",
			Status:      BookStatusInStock,
			Category:    "Ручки",
			Description: "Забавная шариковая ручка в форме шприца с жидкостью.",
		},
		{
			ID:          "9",
			Title:       "Набор маркеров (Пастель)",
			Subject:     "Канцелярия",
			Price:       450,
			CoverImage:  "https://placehold.co/400x600/fce7f3/db2777?text=Markers",
			SampleImage: "https://placehold.co/400x600/png?text=Colors",
			Status:      BookStatusInStock,
			Category:    "Ручки",
			Description: "Набор из 6 текстовыделителей пастельных тонов для конспектов.",
		},
		{
			ID:          "10",
			Title:       "Пазл \"Человеческий мозг\"",
			Subject:     "Досуг",
			Price:       890,
			CoverImage:  "https://placehold.co/400x600/fef3c7/b45309?text=Brain+Puzzle",
			SampleImage: "https://placehold.co/400x600/png?text=Puzzle+Piece",
			Status:      BookStatusInStock,
			Category:    "Развлечения",
			Description: "Сложный и увлекательный пазл на 500 элементов.",
		},
		{
			ID:          "11",
			Title:       "Брелок \"Зуб мудрости\"",
			Subject:     "Сувениры",
			Price:       250,
			CoverImage:  "https://placehold.co/400x600/ecfccb/3f6212?text=Keyring",
			SampleImage: "https://placehold.co/400x600/png?text=Detail",
			Status:      BookStatusInStock,
			Category:    "Развлечения",
			Description: "Милый брелок для ключей или халата.",
		},
	}
}
