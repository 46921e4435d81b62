package seed

import "github.com/umputun/newsdesk/pkg/domain"

var demoAuthors = []domain.Author{
	{Name: "John Smith", Email: "john.smith@news.com", Bio: "Senior tech journalist with 10+ years experience",
		AvatarURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150"},
	{Name: "Sarah Johnson", Email: "sarah.j@news.com", Bio: "Breaking news specialist covering global events",
		AvatarURL: "https://images.unsplash.com/photo-1494790108755-2616b612b8bd?w=150"},
	{Name: "Mike Chen", Email: "mike.chen@news.com", Bio: "Sports correspondent and former athlete",
		AvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150"},
	{Name: "Emily Davis", Email: "emily.davis@news.com", Bio: "Business and finance reporter",
		AvatarURL: "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=150"},
	{Name: "Lisa Garcia", Email: "lisa.garcia@news.com", Bio: "Health and science writer",
		AvatarURL: "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=150"},
}

var demoCategories = []domain.Category{
	{Name: "Technology", Slug: "technology", Description: "Latest tech news, gadgets, and innovations"},
	{Name: "Business", Slug: "business", Description: "Financial markets, startups, and corporate news"},
	{Name: "Sports", Slug: "sports", Description: "Sports news, scores, and athlete profiles"},
	{Name: "Politics", Slug: "politics", Description: "Political developments and government updates"},
	{Name: "Health", Slug: "health", Description: "Medical breakthroughs and wellness tips"},
	{Name: "Science", Slug: "science", Description: "Scientific discoveries and research"},
	{Name: "Environment", Slug: "environment", Description: "Climate change and environmental issues"},
}

var demoTags = []string{
	"breaking-news", "trending", "featured", "exclusive", "analysis",
	"interview", "review", "guide", "opinion", "research",
}

// demoArticle refers to author, category and tags by email and slugs
type demoArticle struct {
	title, content, excerpt, image string
	author, category               string
	tags                           []string
	daysAgo, views                 int
	published                      bool
}

var demoArticles = []demoArticle{
	{
		title: "New Web Framework Release Speeds Up Builds",
		content: `<h2>Faster builds for everyone</h2><p>The latest framework release brings a new bundler and improved
server rendering, cutting build times for large projects in half.</p><ul><li>Incremental compilation</li>
<li>Better type checking</li><li>Smarter caching</li></ul>`,
		excerpt: "The latest framework release brings a new bundler and improved server rendering.",
		image:   "https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=800",
		author:  "john.smith@news.com", category: "technology", tags: []string{"featured", "review"},
		daysAgo: 0, views: 1520, published: true,
	},
	{
		title: "Central Bank Holds Rates Steady",
		content: `<p>The central bank kept its benchmark rate unchanged on Wednesday, citing cooling inflation and a
resilient labor market.</p><p>Analysts expect the first cut later this year.</p>`,
		image:  "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=800",
		author: "emily.davis@news.com", category: "business", tags: []string{"breaking-news", "analysis"},
		daysAgo: 1, views: 2380, published: true,
	},
	{
		title: "Underdogs Win the Championship Final",
		content: `<p>In a match few expected them to win, the underdogs took the title with a late goal in extra
time.</p><blockquote>We never stopped believing, said the captain.</blockquote>`,
		image:  "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?w=800",
		author: "mike.chen@news.com", category: "sports", tags: []string{"trending"},
		daysAgo: 2, views: 3100, published: true,
	},
	{
		title: "Parliament Passes Data Privacy Bill",
		content: `<p>Lawmakers approved a bill that gives citizens new rights over personal data held by online
platforms.</p><p>The law takes effect next year.</p>`,
		author: "sarah.j@news.com", category: "politics", tags: []string{"breaking-news", "analysis"},
		daysAgo: 3, views: 870, published: true,
	},
	{
		title: "Study Links Daily Walks to Better Sleep",
		content: `<p>Researchers followed two thousand adults for a year and found that a thirty minute walk improved
sleep quality for most participants.</p>`,
		image:  "https://images.unsplash.com/photo-1476480862126-209bfaa8edc8?w=800",
		author: "lisa.garcia@news.com", category: "health", tags: []string{"research"},
		daysAgo: 4, views: 640, published: true,
	},
	{
		title: "Telescope Captures Image of Distant Galaxy",
		content: `<p>The space telescope released a detailed image of a galaxy more than thirteen billion light years
away, one of the oldest ever observed.</p>`,
		image:  "https://images.unsplash.com/photo-1462331940025-496dfbfc7564?w=800",
		author: "lisa.garcia@news.com", category: "science", tags: []string{"featured", "research"},
		daysAgo: 6, views: 1980, published: true,
	},
	{
		title: "City Expands Bike Lane Network",
		content: `<p>The city council approved forty kilometres of new protected bike lanes as part of its climate
plan.</p>`,
		author: "sarah.j@news.com", category: "environment", tags: []string{"guide"},
		daysAgo: 9, views: 410, published: true,
	},
	{
		title: "Interview: The Founder Behind the Fintech Boom",
		content: `<p>We sat down with the founder of one of the fastest growing payment startups to talk about
regulation, hiring and what comes next.</p>`,
		author: "emily.davis@news.com", category: "business", tags: []string{"interview", "exclusive"},
		daysAgo: 12, views: 1210, published: true,
	},
	{
		title: "Opinion: Why Local News Still Matters",
		content: `<p>Local reporting keeps communities informed about the decisions that shape daily life.</p>`,
		author: "john.smith@news.com", category: "politics", tags: []string{"opinion"},
		daysAgo: 15, views: 300, published: true,
	},
	{
		title: "Draft: Upcoming Smartphone Review",
		content: `<p>Full review coming after the embargo lifts.</p>`,
		author: "john.smith@news.com", category: "technology", tags: []string{"review"},
		daysAgo: 0, views: 0, published: false,
	},
}

// demoSetting is a setting value in its stored text form
type demoSetting struct {
	key, value  string
	typ         domain.SettingType
	description string
}

var demoSettings = []demoSetting{
	{"site_title", "Newsdesk", domain.SettingText, "Main website title"},
	{"site_description", "Your trusted source for breaking news and analysis", domain.SettingText, "Site meta description"},
	{"site_keywords", "news, breaking news, analysis, technology, business", domain.SettingText, "SEO keywords"},
	{"contact_email", "contact@newsdesk.local", domain.SettingText, "Primary contact email"},
	{"social_twitter", "https://twitter.com/newsdesk", domain.SettingText, "Twitter profile URL"},
	{"footer_copyright", "© Newsdesk. All rights reserved.", domain.SettingText, "Footer copyright text"},
	{"footer_address", "123 News Street, Media City", domain.SettingText, "Company address"},
	{"ads_enabled", "true", domain.SettingBoolean, "Enable advertisements"},
	{"newsletter_enabled", "true", domain.SettingBoolean, "Enable newsletter signup"},
	{"comments_enabled", "false", domain.SettingBoolean, "Enable article comments"},
	{"max_articles_per_page", "10", domain.SettingNumber, "Articles per page limit"},
	{"featured_articles_count", "3", domain.SettingNumber, "Number of featured articles"},
	{"trending_articles_count", "5", domain.SettingNumber, "Number of trending articles"},
	{"cache_duration", "300", domain.SettingNumber, "Cache duration in seconds"},
	{"nav_menu", `{"logo":{"title":"Newsdesk","url":"/"},"items":[]}`, domain.SettingJSON, "Navigation menu configuration"},
	{"footer_menu", `{"sections":[],"social_links":[]}`, domain.SettingJSON, "Footer menu configuration"},
	{"seo_meta", `{"title":"Newsdesk","description":"Breaking news and analysis"}`, domain.SettingJSON, "SEO metadata"},
	{"theme_colors", `{"primary":"#3B82F6","secondary":"#64748B"}`, domain.SettingJSON, "Theme color scheme"},
	{"feature_flags", `{"breaking_news_banner":true,"live_updates":false}`, domain.SettingJSON, "Feature toggles"},
}

var demoMenu = []domain.MenuItem{
	{Title: "Home", URL: "/", Order: 1, MenuType: domain.MenuHeader},
	{Title: "Technology", URL: "/category/technology", Order: 2, MenuType: domain.MenuHeader},
	{Title: "Business", URL: "/category/business", Order: 3, MenuType: domain.MenuHeader},
	{Title: "Sports", URL: "/category/sports", Order: 4, MenuType: domain.MenuHeader},
	{Title: "Politics", URL: "/category/politics", Order: 5, MenuType: domain.MenuHeader},
	{Title: "About", URL: "/about-us", Order: 1, MenuType: domain.MenuFooter},
	{Title: "Contact", URL: "/contact-us", Order: 2, MenuType: domain.MenuFooter},
	{Title: "Privacy Policy", URL: "/privacy-policy", Order: 3, MenuType: domain.MenuFooter},
	{Title: "RSS", URL: "/rss", Order: 4, MenuType: domain.MenuFooter},
}

var demoPages = []domain.Page{
	{Title: "About Us", Slug: "about-us", MetaTitle: "About Our News Platform",
		MetaDescription: "Our commitment to delivering accurate, timely news and analysis.",
		Content:         "<h1>About Us</h1><p>Learn about our mission and team.</p>"},
	{Title: "Contact Us", Slug: "contact-us", MetaTitle: "Contact Information",
		MetaDescription: "Reach out to our editorial team for news tips and inquiries.",
		Content:         "<h1>Contact Us</h1><p>Get in touch with our team.</p>"},
	{Title: "Privacy Policy", Slug: "privacy-policy", MetaTitle: "Privacy Policy",
		MetaDescription: "How we protect and handle your personal information.",
		Content:         "<h1>Privacy Policy</h1><p>Our privacy policy and data protection.</p>"},
	{Title: "Editorial Guidelines", Slug: "editorial-guidelines", MetaTitle: "Editorial Standards",
		MetaDescription: "Our commitment to journalistic integrity and accuracy.",
		Content:         "<h1>Editorial Guidelines</h1><p>Our editorial standards.</p>"},
}

// demoQuestion lists answers, correct is the index of the right one
type demoQuestion struct {
	text    string
	answers []string
	correct int
}

var demoQuiz = domain.Quiz{Title: "News of the Week", Slug: "news-of-the-week",
	Description: "Test how closely you followed this week's headlines"}

var demoQuestions = []demoQuestion{
	{"What did the central bank do with rates?", []string{"Raised them", "Held them steady", "Cut them"}, 1},
	{"How many kilometres of bike lanes were approved?", []string{"Ten", "Twenty", "Forty"}, 2},
	{"Which team won the championship final?", []string{"The favourites", "The underdogs"}, 1},
}

var demoStocks = []domain.StockQuote{
	{Symbol: "AAPL", CompanyName: "Apple Inc.", CurrentPrice: 182.50, PriceChange: 3.25, PercentChange: 1.81,
		Volume: 75000000, MarketCap: 2890000000000},
	{Symbol: "MSFT", CompanyName: "Microsoft Corporation", CurrentPrice: 378.90, PriceChange: 8.15, PercentChange: 2.20,
		Volume: 45000000, MarketCap: 2820000000000},
	{Symbol: "GOOGL", CompanyName: "Alphabet Inc.", CurrentPrice: 141.75, PriceChange: -1.28, PercentChange: -0.89,
		Volume: 25000000, MarketCap: 1780000000000},
	{Symbol: "TSLA", CompanyName: "Tesla Inc.", CurrentPrice: 265.45, PriceChange: -5.30, PercentChange: -1.96,
		Volume: 95000000, MarketCap: 843000000000},
	{Symbol: "AMZN", CompanyName: "Amazon.com Inc.", CurrentPrice: 151.20, PriceChange: 2.15, PercentChange: 1.44,
		Volume: 60000000, MarketCap: 1560000000000},
	{Symbol: "NVDA", CompanyName: "NVIDIA Corporation", CurrentPrice: 445.20, PriceChange: 15.75, PercentChange: 3.67,
		Volume: 55000000, MarketCap: 1100000000000},
}
