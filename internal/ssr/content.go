// internal/ssr/content.go

// Package ssr builds complete static HTML documents for the two fixed
// marketing surfaces (landing page, gallery listing), ahead of any live
// page data. Crawlers detected by botdetect receive these documents instead
// of the SPA shell.
//
// Every interpolated string, including gallery item titles and descriptions
// sourced from user content, passes through htmlutil.EscapeHTML before it
// reaches the output. JSON-LD is serialized with encoding/json, never
// hand-built.
package ssr

import "github.com/dalemusser/linkfolio/internal/domain/models"

// surfaceText is the fixed copy for one surface in one language.
type surfaceText struct {
	Title       string
	Description string
	Heading     string
	Tagline     string
	CTALabel    string
	Features    []string
	FAQ         []faqItem
}

type faqItem struct {
	Q string
	A string
}

// landingText is the per-language landing page copy. Missing languages fall
// back to Russian.
var landingText = map[models.Lang]surfaceText{
	models.LangRU: {
		Title:       "LinkFolio — мини-сайт и все ссылки на одной странице",
		Description: "Создайте страницу-визитку за пару минут: ссылки, услуги, цены, мероприятия и приём заявок на одной странице.",
		Heading:     "Все ваши ссылки на одной странице",
		Tagline:     "Конструктор мини-сайтов для мастеров, экспертов и малого бизнеса.",
		CTALabel:    "Создать страницу",
		Features: []string{
			"Готовые блоки: ссылки, услуги, цены, мероприятия, вопросы и ответы",
			"SEO-разметка и структурированные данные из коробки",
			"Приём заявок и запись без сторонних сервисов",
		},
		FAQ: []faqItem{
			{Q: "Что такое LinkFolio?", A: "Это конструктор страницы-визитки: одна ссылка, на которой собраны все ваши контакты, услуги и цены."},
			{Q: "Сколько это стоит?", A: "Базовая страница бесплатна. Расширенные блоки доступны по подписке."},
			{Q: "Нужно ли уметь программировать?", A: "Нет. Страница собирается из готовых блоков в визуальном редакторе."},
		},
	},
	models.LangEN: {
		Title:       "LinkFolio — your micro-site and every link on one page",
		Description: "Build a link-in-bio page in minutes: links, services, pricing, events, and lead capture on a single page.",
		Heading:     "All your links on one page",
		Tagline:     "A micro-site builder for creators, experts, and small businesses.",
		CTALabel:    "Create your page",
		Features: []string{
			"Ready-made blocks: links, services, pricing, events, FAQ",
			"SEO markup and structured data out of the box",
			"Lead capture and booking without third-party tools",
		},
		FAQ: []faqItem{
			{Q: "What is LinkFolio?", A: "A link-in-bio page builder: one link that gathers all your contacts, services, and prices."},
			{Q: "How much does it cost?", A: "The basic page is free. Advanced blocks are available on a subscription."},
			{Q: "Do I need to code?", A: "No. Pages are assembled from ready-made blocks in a visual editor."},
		},
	},
	models.LangKK: {
		Title:       "LinkFolio — шағын сайт және барлық сілтемелер бір бетте",
		Description: "Бірнеше минутта визитка-бет жасаңыз: сілтемелер, қызметтер, бағалар, іс-шаралар және өтінімдер бір бетте.",
		Heading:     "Барлық сілтемелеріңіз бір бетте",
		Tagline:     "Шеберлерге, сарапшыларға және шағын бизнеске арналған шағын сайт құрастырғышы.",
		CTALabel:    "Бет жасау",
		Features: []string{
			"Дайын блоктар: сілтемелер, қызметтер, бағалар, іс-шаралар, сұрақ-жауап",
			"SEO белгілеу және құрылымдалған деректер бірден дайын",
			"Бөгде сервиссіз өтінімдер қабылдау",
		},
		FAQ: []faqItem{
			{Q: "LinkFolio деген не?", A: "Бұл визитка-бет құрастырғышы: барлық байланыстарыңыз бен қызметтеріңіз жиналған бір сілтеме."},
			{Q: "Бағасы қанша?", A: "Негізгі бет тегін. Кеңейтілген блоктар жазылым бойынша қолжетімді."},
			{Q: "Бағдарламалау керек пе?", A: "Жоқ. Бет визуалды редактордағы дайын блоктардан құрастырылады."},
		},
	},
}

// galleryText is the per-language gallery listing copy.
var galleryText = map[models.Lang]surfaceText{
	models.LangRU: {
		Title:       "Галерея страниц — LinkFolio",
		Description: "Примеры страниц, созданных в LinkFolio: мастера, эксперты и бизнесы из разных ниш.",
		Heading:     "Галерея страниц",
	},
	models.LangEN: {
		Title:       "Page gallery — LinkFolio",
		Description: "Pages built with LinkFolio: creators, experts, and businesses across niches.",
		Heading:     "Page gallery",
	},
	models.LangKK: {
		Title:       "Беттер галереясы — LinkFolio",
		Description: "LinkFolio арқылы жасалған беттер: әртүрлі саладағы шеберлер мен бизнестер.",
		Heading:     "Беттер галереясы",
	},
}

// textFor returns the copy for the surface in lang, falling back to Russian.
func textFor(table map[models.Lang]surfaceText, lang models.Lang) surfaceText {
	if t, ok := table[lang]; ok {
		return t
	}
	return table[models.LangRU]
}
