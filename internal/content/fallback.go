// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "github.com/veridianlabs/veridian-go/internal/model"

// Sample datasets served whenever the store is unconfigured, unreachable,
// or returns no rows. They are returned verbatim, never passed through the
// decoders, so preview builds without a database always render complete,
// demo-quality pages.

var sampleJobs = []model.Job{
	{
		ID:          "sample-job-1",
		Title:       "Senior Backend Engineer",
		Slug:        "senior-backend-engineer",
		Department:  "Engineering",
		Location:    "Remote (EU)",
		Type:        "Full-time",
		Description: "Design and operate the services powering our ventures portfolio, from content APIs to internal tooling. You will own systems end to end: schema design, rollout, observability, and the 3 a.m. pages they occasionally produce.",
		Requirements: []string{
			"5+ years building production web services",
			"Strong SQL and data modeling skills",
			"Experience operating services in the cloud",
		},
		Technologies: []string{"Go", "SQLite", "Redis", "Docker"},
		Salary:       "€75,000 – €95,000",
		Status:       model.JobStatusOpen,
		CreatedAt:    "2025-11-03T09:00:00Z",
		UpdatedAt:    "2025-11-03T09:00:00Z",
	},
	{
		ID:          "sample-job-2",
		Title:       "Product Designer",
		Slug:        "product-designer",
		Department:  "Design",
		Location:    "Berlin or Remote",
		Type:        "Full-time",
		Description: "Shape the product experience across our venture brands. You will run discovery with founders, own design systems, and ship polished interfaces alongside a small senior team.",
		Requirements: []string{
			"Portfolio of shipped product work",
			"Fluency in modern design tooling",
			"Comfort working directly with engineers",
		},
		Technologies: []string{"Figma", "TypeScript", "React"},
		Salary:       "€60,000 – €80,000",
		Status:       model.JobStatusOpen,
		CreatedAt:    "2025-11-10T09:00:00Z",
		UpdatedAt:    "2025-11-10T09:00:00Z",
	},
	{
		ID:          "sample-job-3",
		Title:       "Growth Marketing Manager",
		Slug:        "growth-marketing-manager",
		Department:  "Marketing",
		Location:    "Remote",
		Type:        "Contract",
		Description: "Own acquisition experiments across the portfolio: paid channels, content, and lifecycle. You will work with venture teams to find repeatable growth loops and kill the ones that don't repeat.",
		Requirements: []string{
			"Track record of profitable paid campaigns",
			"Hands-on analytics experience",
		},
		Technologies: []string{"GA4", "Segment", "HubSpot"},
		Salary:       "Competitive",
		Status:       model.JobStatusOpen,
		CreatedAt:    "2025-12-01T09:00:00Z",
		UpdatedAt:    "2025-12-01T09:00:00Z",
	},
}

var sampleBlogPosts = []model.BlogPost{
	{
		ID:          "sample-post-1",
		Title:       "Why We Build Ventures in Pairs",
		Slug:        "why-we-build-ventures-in-pairs",
		Excerpt:     "Every venture we start gets two founders from day one. Here is what a decade of studio building taught us about why solo doesn't scale.",
		Content:     "Every venture we start gets two founders from day one.\n\nIt is the single most consistent pattern across our portfolio: paired founders out-execute solo ones, survive the troughs, and make better hiring calls. This post walks through the data behind that conviction and how we structure founder matching.",
		HTML:        "<p>Every venture we start gets two founders from day one.</p>\n<p>It is the single most consistent pattern across our portfolio: paired founders out-execute solo ones, survive the troughs, and make better hiring calls. This post walks through the data behind that conviction and how we structure founder matching.</p>",
		Author:      "Maya Lindqvist",
		Category:    "Studio Notes",
		Tags:        []string{"Venture Building", "Founders"},
		Image:       "https://placehold.co/800x450/0f172a/e2e8f0?text=Why+We+Build+Ventures+in+Pairs",
		Status:      model.PostStatusPublished,
		PublishedAt: "2026-01-12T08:00:00Z",
		CreatedAt:   "2026-01-10T15:24:00Z",
	},
	{
		ID:          "sample-post-2",
		Title:       "The Boring Stack Wins",
		Slug:        "the-boring-stack-wins",
		Excerpt:     "Our ventures ship on deliberately unexciting technology. That choice has paid for itself every single year.",
		Content:     "Our ventures ship on deliberately unexciting technology.\n\nSQLite over distributed databases, monoliths over microservices, servers over serverless. Boring survives founder departures, funding droughts, and traffic spikes alike.",
		HTML:        "<p>Our ventures ship on deliberately unexciting technology.</p>\n<p>SQLite over distributed databases, monoliths over microservices, servers over serverless. Boring survives founder departures, funding droughts, and traffic spikes alike.</p>",
		Author:      "Tomás Ribeiro",
		Category:    "Engineering",
		Tags:        []string{"Technology", "Innovation"},
		Image:       "https://placehold.co/800x450/0f172a/e2e8f0?text=The+Boring+Stack+Wins",
		Status:      model.PostStatusPublished,
		PublishedAt: "2026-02-02T08:00:00Z",
		CreatedAt:   "2026-01-28T11:02:00Z",
	},
	{
		ID:          "sample-post-3",
		Title:       "Raising a Seed Round in 2026",
		Slug:        "raising-a-seed-round-in-2026",
		Excerpt:     "Three of our portfolio companies closed seed rounds this quarter. What worked, what didn't, and what surprised us.",
		Content:     "Three of our portfolio companies closed seed rounds this quarter.\n\nThe playbook that worked looked nothing like 2021: smaller rounds, revenue expectations at seed, and diligence that actually read the data room.",
		HTML:        "<p>Three of our portfolio companies closed seed rounds this quarter.</p>\n<p>The playbook that worked looked nothing like 2021: smaller rounds, revenue expectations at seed, and diligence that actually read the data room.</p>",
		Author:      "Maya Lindqvist",
		Category:    "Funding",
		Tags:        []string{"Fundraising", "Portfolio"},
		Image:       "https://placehold.co/800x450/0f172a/e2e8f0?text=Raising+a+Seed+Round+in+2026",
		Status:      model.PostStatusPublished,
		PublishedAt: "2026-03-05T08:00:00Z",
		CreatedAt:   "2026-03-01T09:40:00Z",
	},
}

var sampleServices = []model.Service{
	{
		ID:          "sample-service-1",
		Title:       "Venture Building",
		Slug:        "venture-building",
		Description: "We co-found companies from scratch: validation, first product, first hires, and the operating rhythm that carries a team from idea to Series A.",
		Icon:        "rocket",
		Features:    []string{"Founder matching", "Product validation", "Go-to-market sprints", "Follow-on fundraising"},
		Status:      model.EntityStatusActive,
		Order:       1,
	},
	{
		ID:          "sample-service-2",
		Title:       "Product Engineering",
		Slug:        "product-engineering",
		Description: "Senior product teams embedded with your company to ship the first version fast and leave behind systems your own hires can run.",
		Icon:        "code",
		Features:    []string{"Full-stack delivery", "Architecture reviews", "Hiring support"},
		Status:      model.EntityStatusActive,
		Order:       2,
	},
	{
		ID:          "sample-service-3",
		Title:       "Design Sprints",
		Slug:        "design-sprints",
		Description: "One to two week engagements that turn a fuzzy opportunity into a tested prototype with real user signal.",
		Icon:        "pen-tool",
		Features:    []string{"Prototyping", "User research", "Brand foundations"},
		Status:      model.EntityStatusActive,
		Order:       3,
	},
	{
		ID:          "sample-service-4",
		Title:       "Growth Advisory",
		Slug:        "growth-advisory",
		Description: "Ongoing advisory for portfolio and external companies on acquisition, retention, and the metrics that actually predict survival.",
		Icon:        "trending-up",
		Features:    []string{"Channel strategy", "Analytics setup", "Experiment design"},
		Status:      model.EntityStatusActive,
		Order:       4,
	},
}

var sampleVentures = []model.Venture{
	{
		ID:               "sample-venture-1",
		Name:             "Fieldnote",
		Slug:             "fieldnote",
		Description:      "Inspection and compliance software for mid-size manufacturers. Fieldnote replaces paper checklists with offline-capable mobile workflows and gives plant managers a live quality dashboard.",
		ShortDescription: "Compliance workflows for manufacturers",
		Industry:         "Industrial SaaS",
		Stage:            "Series A",
		Website:          "https://fieldnote.example.com",
		Logo:             "https://placehold.co/400x400/0f172a/e2e8f0?text=Fieldnote",
		Growth:           "+180% YoY",
		TeamSize:         "24",
		Technologies:     []string{"Go", "PostgreSQL", "React Native"},
		FoundedYear:      "2022",
		Status:           model.EntityStatusActive,
	},
	{
		ID:               "sample-venture-2",
		Name:             "Lumen Health",
		Slug:             "lumen-health",
		Description:      "Patient intake and triage automation for private clinics across the Nordics, cutting front-desk workload roughly in half at launch customers.",
		ShortDescription: "Clinic intake automation",
		Industry:         "Health Tech",
		Stage:            "Seed",
		Website:          "https://lumenhealth.example.com",
		Logo:             "https://placehold.co/400x400/0f172a/e2e8f0?text=Lumen+Health",
		Growth:           "+95% YoY",
		TeamSize:         "11",
		Technologies:     []string{"TypeScript", "FHIR", "GCP"},
		FoundedYear:      "2023",
		Status:           model.EntityStatusActive,
	},
	{
		ID:               "sample-venture-3",
		Name:             "Carta Logistics",
		Slug:             "carta-logistics",
		Description:      "Route optimization and proof-of-delivery for regional courier fleets that are too small for enterprise TMS pricing and too big for spreadsheets.",
		ShortDescription: "Routing for regional courier fleets",
		Industry:         "Logistics",
		Stage:            "Series B",
		Website:          "https://cartalogistics.example.com",
		Logo:             "https://placehold.co/400x400/0f172a/e2e8f0?text=Carta+Logistics",
		Growth:           "+60% YoY",
		TeamSize:         "47",
		Technologies:     []string{"Go", "Kafka", "Kubernetes"},
		FoundedYear:      "2020",
		Status:           model.EntityStatusActive,
	},
	{
		ID:               "sample-venture-4",
		Name:             "Briefly",
		Slug:             "briefly",
		Description:      "AI-assisted contract review for in-house legal teams at scale-ups, focused on the 80% of agreements that never should have reached a lawyer.",
		ShortDescription: "Contract review for in-house counsel",
		Industry:         "Legal Tech",
		Stage:            "Seed",
		Website:          "https://briefly.example.com",
		Logo:             "https://placehold.co/400x400/0f172a/e2e8f0?text=Briefly",
		Growth:           "N/A",
		TeamSize:         "8",
		Technologies:     []string{"Python", "PostgreSQL"},
		FoundedYear:      "2024",
		Status:           model.EntityStatusActive,
	},
}

var sampleCaseStudies = []model.CaseStudy{
	{
		ID:             "sample-case-1",
		Title:          "Halving Clinic Wait Times with Lumen Health",
		Slug:           "halving-clinic-wait-times",
		Client:         "Nordkliniken Group",
		Industry:       "Healthcare",
		Challenge:      "Front-desk staff at 14 clinics spent most of each morning re-typing paper intake forms, and patients queued for an average of 22 minutes before their first interaction.",
		Solution:       "We rolled out digital pre-visit intake with automated triage routing, integrated with the group's existing scheduling system over a four-month engagement.",
		Results:        []string{"Average wait time down from 22 to 9 minutes", "Front-desk admin workload cut by 54%", "Patient satisfaction up 31 points"},
		Technologies:   []string{"TypeScript", "FHIR", "GCP"},
		Gallery:        []string{"https://placehold.co/800x450/0f172a/e2e8f0?text=Intake+Dashboard", "https://placehold.co/800x450/0f172a/e2e8f0?text=Triage+Flow"},
		Image:          "https://placehold.co/800x450/0f172a/e2e8f0?text=Lumen+Health+Case+Study",
		CompletionDate: "2025-09-30",
		Status:         model.PostStatusPublished,
	},
	{
		ID:           "sample-case-2",
		Title:        "A Routing Engine for 40-Van Fleets",
		Slug:         "routing-engine-for-small-fleets",
		Client:       "Carta Logistics",
		Industry:     "Logistics",
		Challenge:    "Regional couriers were planning routes by hand each evening; a single dispatcher's sick day could derail an entire depot.",
		Solution:     "We built Carta's first optimization engine and proof-of-delivery app, tuned for fleets of 10 to 60 vehicles rather than enterprise scale.",
		Results:      []string{"18% fewer kilometers driven per parcel", "Route planning reduced from 3 hours to 10 minutes"},
		Technologies: []string{"Go", "OR-Tools", "Kafka"},
		Gallery:      []string{"https://placehold.co/800x450/0f172a/e2e8f0?text=Route+Planner"},
		Image:        "https://placehold.co/800x450/0f172a/e2e8f0?text=Carta+Case+Study",
		Status:       model.PostStatusPublished,
	},
	{
		ID:           "sample-case-3",
		Title:        "From Sprint to Seed in Nine Months",
		Slug:         "from-sprint-to-seed",
		Client:       "Briefly",
		Industry:     "Legal Tech",
		Challenge:    "Two domain-expert founders had deep legal experience, a validated pain point, and no product team.",
		Solution:     "A two-week design sprint produced a tested prototype; our embedded engineering pod then shipped the first production version and hired its replacement team.",
		Results:      []string{"First paying customer within 11 weeks", "€1.8M seed round closed nine months after kickoff"},
		Technologies: []string{"Python", "React", "PostgreSQL"},
		Gallery:      []string{},
		Image:        "https://placehold.co/800x450/0f172a/e2e8f0?text=Briefly+Case+Study",
		Status:       model.PostStatusPublished,
	},
}

var sampleTeamMembers = []model.TeamMember{
	{
		ID:       "sample-team-1",
		Name:     "Maya Lindqvist",
		Slug:     "maya-lindqvist",
		Position: "Managing Partner",
		Bio:      "Maya co-founded Veridian Labs after a decade operating B2B SaaS companies, including two exits. She leads venture selection and founder matching.",
		Image:    "https://placehold.co/400x400/0f172a/e2e8f0?text=Maya+Lindqvist",
		Skills:   []string{"Venture Strategy", "Fundraising", "B2B SaaS"},
		LinkedIn: "https://linkedin.com/in/example-maya",
		Twitter:  "",
		Status:   model.EntityStatusActive,
		Order:    1,
	},
	{
		ID:       "sample-team-2",
		Name:     "Tomás Ribeiro",
		Slug:     "tomas-ribeiro",
		Position: "Engineering Partner",
		Bio:      "Tomás runs the studio's engineering practice and has been the first technical hire, in spirit, at every venture we've launched since 2021.",
		Image:    "https://placehold.co/400x400/0f172a/e2e8f0?text=Tomas+Ribeiro",
		Skills:   []string{"Go", "Distributed Systems", "Team Building"},
		LinkedIn: "https://linkedin.com/in/example-tomas",
		Twitter:  "https://twitter.com/example_tomas",
		Status:   model.EntityStatusActive,
		Order:    2,
	},
	{
		ID:       "sample-team-3",
		Name:     "Aisha Okonkwo",
		Slug:     "aisha-okonkwo",
		Position: "Design Partner",
		Bio:      "Aisha leads design sprints and brand work across the portfolio. Before Veridian she built design teams at two unicorns.",
		Image:    "https://placehold.co/400x400/0f172a/e2e8f0?text=Aisha+Okonkwo",
		Skills:   []string{"Product Design", "Design Systems", "Research"},
		LinkedIn: "https://linkedin.com/in/example-aisha",
		Twitter:  "",
		Status:   model.EntityStatusActive,
		Order:    3,
	},
	{
		ID:       "sample-team-4",
		Name:     "Jonas Weber",
		Slug:     "jonas-weber",
		Position: "Growth Partner",
		Bio:      "Jonas owns growth across the studio, from first acquisition experiments to scaling paid channels past €1M monthly spend.",
		Image:    "https://placehold.co/400x400/0f172a/e2e8f0?text=Jonas+Weber",
		Skills:   []string{"Performance Marketing", "Analytics", "Lifecycle"},
		LinkedIn: "https://linkedin.com/in/example-jonas",
		Twitter:  "",
		Status:   model.EntityStatusActive,
		Order:    4,
	},
}

var samplePressReleases = []model.PressRelease{
	{
		ID:          "sample-press-1",
		Title:       "Veridian Labs Closes €40M Fund II",
		Slug:        "veridian-labs-closes-fund-ii",
		Summary:     "The new fund will back 12 studio ventures over the next four years, with a focus on industrial and health software.",
		Content:     "Veridian Labs today announced the close of its second fund at €40M, backed by institutional LPs and founders from its first portfolio.",
		Source:      "Veridian Labs",
		URL:         "https://veridianlabs.example.com/press/fund-ii",
		PublishedAt: "2026-01-20T07:00:00Z",
		Status:      model.PostStatusPublished,
	},
	{
		ID:          "sample-press-2",
		Title:       "Carta Logistics Raises Series B",
		Slug:        "carta-logistics-raises-series-b",
		Summary:     "Portfolio company Carta Logistics raised €18M to expand its routing platform into three new markets.",
		Content:     "Carta Logistics, founded at Veridian Labs in 2020, announced an €18M Series B led by a European growth fund.",
		Source:      "TechCrunch",
		URL:         "https://techcrunch.com/example/carta-series-b",
		PublishedAt: "2026-02-14T07:00:00Z",
		Status:      model.PostStatusPublished,
	},
	{
		ID:          "sample-press-3",
		Title:       "Lumen Health Named Nordic Startup of the Year",
		Slug:        "lumen-health-startup-of-the-year",
		Summary:     "Lumen Health took the top prize at the Nordic Health Innovation Awards for its clinic intake platform.",
		Content:     "Lumen Health was recognized for measurable impact on clinic operations across 40 sites in Sweden and Finland.",
		Source:      "Nordic Health Weekly",
		URL:         "https://example.com/lumen-award",
		PublishedAt: "2026-03-02T07:00:00Z",
		Status:      model.PostStatusPublished,
	},
}

var sampleMediaAssets = []model.MediaAsset{
	{
		ID:           "sample-media-1",
		Title:        "Studio Office, Berlin",
		FileName:     "studio-office-berlin.jpg",
		URL:          "https://placehold.co/1600x900/0f172a/e2e8f0?text=Studio+Office",
		ThumbnailURL: "https://placehold.co/400x225/0f172a/e2e8f0?text=Studio+Office",
		MimeType:     "image/jpeg",
		Size:         482_113,
		Width:        1600,
		Height:       900,
		Alt:          "The Veridian Labs studio space in Berlin",
		UploadedAt:   "2025-10-05T12:00:00Z",
	},
	{
		ID:           "sample-media-2",
		Title:        "Veridian Labs Logo Pack",
		FileName:     "veridian-logo-pack.png",
		URL:          "https://placehold.co/1200x1200/0f172a/e2e8f0?text=Logo+Pack",
		ThumbnailURL: "https://placehold.co/300x300/0f172a/e2e8f0?text=Logo+Pack",
		MimeType:     "image/png",
		Size:         96_404,
		Width:        1200,
		Height:       1200,
		Alt:          "Veridian Labs brand logo pack",
		UploadedAt:   "2025-10-05T12:05:00Z",
	},
	{
		ID:           "sample-media-3",
		Title:        "Fund II Announcement Banner",
		FileName:     "fund-ii-banner.jpg",
		URL:          "https://placehold.co/1920x600/0f172a/e2e8f0?text=Fund+II",
		ThumbnailURL: "https://placehold.co/480x150/0f172a/e2e8f0?text=Fund+II",
		MimeType:     "image/jpeg",
		Size:         301_278,
		Width:        1920,
		Height:       600,
		Alt:          "Fund II announcement banner artwork",
		UploadedAt:   "2026-01-19T16:30:00Z",
	},
}
