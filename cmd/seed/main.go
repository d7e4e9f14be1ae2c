package main

import (
	"context"
	"log"
	"os"

	"structai-be/internal/entity"
	"structai-be/internal/repository/implementation"
	"structai-be/pkg/database"

	"github.com/joho/godotenv"
)

// Initial reference passages for the study module. Re-running the seeder
// overwrites passages by content key, so edits here are safe to re-apply.
var passages = []entity.Document{
	{
		ContentKey: "EU_STRUCTURE",
		Title:      "Структура Еврокодов",
		Content: "Система Еврокодов состоит из 10 стандартов: EN 1990 (основы проектирования), " +
			"EN 1991 (воздействия), EN 1992–EN 1996 и EN 1999 (материалы: бетон, сталь, " +
			"сталежелезобетон, дерево, каменная кладка, алюминий), EN 1997 (геотехника) и " +
			"EN 1998 (сейсмика). Каждый стандарт дополняется национальным приложением.",
	},
	{
		ContentKey: "EN1990_about",
		Title:      "Что такое EN 1990",
		Content: "EN 1990 «Основы проектирования несущих конструкций» устанавливает принципы и " +
			"требования к безопасности, эксплуатационной пригодности и долговечности конструкций. " +
			"Это базовый документ системы Еврокодов: остальные части опираются на его положения.",
	},
	{
		ContentKey: "EN1990_purpose",
		Title:      "Зачем нужен EN 1990",
		Content: "EN 1990 задаёт единый формат проверок предельных состояний, систему частных " +
			"коэффициентов и правила составления комбинаций воздействий. Без него невозможно " +
			"согласованно применять EN 1991–EN 1999.",
	},
	{
		ContentKey: "EN1990_structure",
		Title:      "Структура EN 1990",
		Content: "Разделы EN 1990: 1 — общие положения; 2 — требования; 3 — принципы расчёта по " +
			"предельным состояниям; 4 — основные переменные; 5 — расчётные модели; 6 — проверка " +
			"методом частных коэффициентов; приложения A, B, C, D.",
	},
	{
		ContentKey: "EN1990_s1_scope",
		Title:      "1.1 Область применения",
		Content: "EN 1990 применяется при проектировании зданий и инженерных сооружений совместно с " +
			"EN 1991–EN 1999, а также при оценке существующих конструкций и разработке нестандартных решений.",
	},
	{
		ContentKey: "EN1990_s1_terms",
		Title:      "1.5 Термины и определения",
		Content: "Ключевые термины: расчётная ситуация, предельное состояние, воздействие, эффект " +
			"воздействия, сопротивление, характеристическое значение, расчётное значение, надёжность.",
	},
	{
		ContentKey: "EN1990_s2_basic",
		Title:      "2.1 Основные требования",
		Content: "Конструкция должна воспринимать все воздействия в течение срока службы, сохранять " +
			"пригодность к эксплуатации и обладать достаточной живучестью при локальных повреждениях.",
	},
	{
		ContentKey: "EN1990_s2_reliability",
		Title:      "2.2 Управление надёжностью",
		Content: "Надёжность дифференцируется классами последствий CC1–CC3 и классами надёжности " +
			"RC1–RC3. Класс определяет коэффициент KFI и требования к контролю проектирования и строительства.",
	},
	{
		ContentKey: "EN1990_s2_worklife",
		Title:      "2.3 Расчётный срок службы",
		Content: "Категории расчётного срока службы: от 10 лет (временные сооружения) до 100 лет " +
			"(монументальные здания, мосты). Обычные здания — категория 4, 50 лет.",
	},
	{
		ContentKey: "EN1990_s3_uls",
		Title:      "3.3 Предельные состояния несущей способности",
		Content: "Предельные состояния несущей способности (ULS): EQU — потеря равновесия, STR — " +
			"разрушение или чрезмерные деформации конструкции, GEO — отказ основания, FAT — усталость.",
	},
	{
		ContentKey: "EN1990_s3_sls",
		Title:      "3.4 Предельные состояния эксплуатационной пригодности",
		Content: "Предельные состояния эксплуатационной пригодности (SLS): прогибы, перемещения, " +
			"колебания и повреждения, нарушающие нормальную эксплуатацию. Различают обратимые и необратимые состояния.",
	},
	{
		ContentKey: "EN1990_s4_actions",
		Title:      "4.1 Воздействия и влияния среды",
		Content: "Воздействия классифицируются по изменчивости во времени: постоянные G, переменные Q, " +
			"особые A. Репрезентативные значения переменных воздействий: характеристическое, ψ0·Qk, ψ1·Qk, ψ2·Qk.",
	},
	{
		ContentKey: "EN1990_s4_materials",
		Title:      "4.2 Свойства материалов и изделий",
		Content: "Свойства материалов представляются характеристическими значениями (обычно 5%-ный " +
			"квантиль). Расчётное значение получают делением на частный коэффициент γM.",
	},
	{
		ContentKey: "EN1990_s4_geometry",
		Title:      "4.3 Геометрические данные",
		Content: "Геометрические данные принимаются номинальными значениями; несовершенства учитываются " +
			"согласно материалам EN 1992–EN 1999.",
	},
	{
		ContentKey: "EN1990_s6_partial",
		Title:      "6.3 Частные коэффициенты",
		Content: "Расчётные значения воздействий: Fd = γF·ψ·Fk. Базовые значения для проверки STR: " +
			"γG = 1,35 для неблагоприятных постоянных воздействий, γQ = 1,5 для переменных.",
	},
	{
		ContentKey: "EN1990_s6_comb",
		Title:      "6.4 Комбинации воздействий",
		Content: "Основная комбинация для постоянных и переходных расчётных ситуаций: " +
			"Σ γG,j·Gk,j + γQ,1·Qk,1 + Σ γQ,i·ψ0,i·Qk,i (формула 6.10). Для SLS применяются " +
			"характеристическая, частая и практически постоянная комбинации.",
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	repo := implementation.NewDocumentRepository(db)
	ctx := context.Background()

	for i := range passages {
		if err := repo.Save(ctx, &passages[i]); err != nil {
			log.Fatalf("Error: Failed to seed %s: %v", passages[i].ContentKey, err)
		}
	}

	log.Printf("✅ Seeded %d reference passages", len(passages))
}
