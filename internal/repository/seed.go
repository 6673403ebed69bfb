package repository

import (
	"context"

	"github.com/afr117/My-personal-website/internal/model"
)

func strPtr(s string) *string { return &s }

// DefaultProjects は SEED_PROJECTS=true のときにカタログへ投入するサンプル
func DefaultProjects() []*model.Project {
	const assets = "/attached_assets/generated_images/"
	return []*model.Project{
		{
			ID:           "1",
			Title:        "Analytics Dashboard",
			Description:  "A comprehensive analytics platform featuring real-time data visualization, custom reporting tools, and advanced filtering capabilities. Built with React, TypeScript, and D3.js for interactive charts.",
			Image:        assets + "Web_dashboard_project_mockup_06c541d1.png",
			Technologies: []string{"React", "TypeScript", "D3.js", "Tailwind CSS", "Node.js"},
			GithubURL:    strPtr("https://github.com"),
			LiveURL:      strPtr("https://example.com"),
			Featured:     true,
		},
		{
			ID:           "2",
			Title:        "E-Commerce Mobile App",
			Description:  "Full-featured shopping application with product browsing, cart management, secure checkout, and order tracking. Includes push notifications and offline support for enhanced user experience.",
			Image:        assets + "Mobile_app_project_mockup_d4e2c4f3.png",
			Technologies: []string{"React Native", "Redux", "Firebase", "Stripe"},
			GithubURL:    strPtr("https://github.com"),
			LiveURL:      strPtr("https://example.com"),
			Featured:     true,
		},
		{
			ID:           "3",
			Title:        "AI Content Generator",
			Description:  "Machine learning powered tool for generating creative content, utilizing natural language processing and GPT models. Features customizable templates, multi-language support, and export options.",
			Image:        assets + "AI_project_visualization_be55ccb9.png",
			Technologies: []string{"Python", "TensorFlow", "FastAPI", "React", "OpenAI"},
			GithubURL:    strPtr("https://github.com"),
			Featured:     true,
		},
		{
			ID:           "4",
			Title:        "Project Management System",
			Description:  "Collaborative workspace for teams to plan, track, and deliver projects efficiently. Includes Kanban boards, Gantt charts, time tracking, and real-time collaboration features.",
			Image:        assets + "Developer_workspace_hero_image_979b09e4.png",
			Technologies: []string{"Next.js", "PostgreSQL", "Prisma", "WebSockets"},
			GithubURL:    strPtr("https://github.com"),
			LiveURL:      strPtr("https://example.com"),
		},
		{
			ID:           "5",
			Title:        "Social Media Analytics",
			Description:  "Powerful analytics tool for tracking social media performance across multiple platforms. Features sentiment analysis, trend detection, and automated reporting with beautiful visualizations.",
			Image:        assets + "Web_dashboard_project_mockup_06c541d1.png",
			Technologies: []string{"Vue.js", "Python", "MongoDB", "Chart.js"},
			GithubURL:    strPtr("https://github.com"),
		},
		{
			ID:           "6",
			Title:        "Smart Home Controller",
			Description:  "IoT platform for controlling and automating smart home devices. Includes voice control integration, custom automation rules, energy monitoring, and mobile companion app.",
			Image:        assets + "Mobile_app_project_mockup_d4e2c4f3.png",
			Technologies: []string{"React", "Node.js", "MQTT", "Raspberry Pi"},
			GithubURL:    strPtr("https://github.com"),
			LiveURL:      strPtr("https://example.com"),
		},
	}
}

// SeedIfEmpty は store が空のときだけ projects を登録する。登録件数を返す。
func SeedIfEmpty(ctx context.Context, store ProjectRepository, projects []*model.Project) (int, error) {
	existing, err := store.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i, p := range projects {
		if err := store.Create(ctx, p); err != nil {
			return i, err
		}
	}
	return len(projects), nil
}
