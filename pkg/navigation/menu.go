package navigation

// Section is one EN 1990 section with its subsection content keys.
type Section struct {
	Id          string
	Title       string
	Subsections []Subsection
}

type Subsection struct {
	ContentKey string
	Title      string
}

// en1990Sections is the study-module tree below "Разделы EN 1990".
// Ordered slices, not maps: button order is part of the render contract.
var en1990Sections = []Section{
	{
		Id:    "sec1",
		Title: "Раздел 1. Общие положения",
		Subsections: []Subsection{
			{ContentKey: "EN1990_s1_scope", Title: "1.1 Область применения"},
			{ContentKey: "EN1990_s1_terms", Title: "1.5 Термины и определения"},
		},
	},
	{
		Id:    "sec2",
		Title: "Раздел 2. Требования",
		Subsections: []Subsection{
			{ContentKey: "EN1990_s2_basic", Title: "2.1 Основные требования"},
			{ContentKey: "EN1990_s2_reliability", Title: "2.2 Управление надёжностью"},
			{ContentKey: "EN1990_s2_worklife", Title: "2.3 Расчётный срок службы"},
		},
	},
	{
		Id:    "sec3",
		Title: "Раздел 3. Принципы расчёта по предельным состояниям",
		Subsections: []Subsection{
			{ContentKey: "EN1990_s3_uls", Title: "3.3 Предельные состояния несущей способности"},
			{ContentKey: "EN1990_s3_sls", Title: "3.4 Предельные состояния эксплуатационной пригодности"},
		},
	},
	{
		Id:    "sec4",
		Title: "Раздел 4. Основные переменные",
		Subsections: []Subsection{
			{ContentKey: "EN1990_s4_actions", Title: "4.1 Воздействия и влияния среды"},
			{ContentKey: "EN1990_s4_materials", Title: "4.2 Свойства материалов и изделий"},
			{ContentKey: "EN1990_s4_geometry", Title: "4.3 Геометрические данные"},
		},
	},
	{
		Id:    "sec6",
		Title: "Раздел 6. Проверка методом частных коэффициентов",
		Subsections: []Subsection{
			{ContentKey: "EN1990_s6_partial", Title: "6.3 Частные коэффициенты"},
			{ContentKey: "EN1990_s6_comb", Title: "6.4 Комбинации воздействий"},
		},
	},
}

func findSection(id string) *Section {
	for i := range en1990Sections {
		if en1990Sections[i].Id == id {
			return &en1990Sections[i]
		}
	}
	return nil
}
