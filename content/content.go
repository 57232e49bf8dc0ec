// Package content holds the portfolio's hardcoded copy: profile, skills,
// projects and certifications.
package content

import (
	"errors"
	"strings"
)

var ErrProjectNotFound = errors.New("project not found")

type Profile struct {
	Name          string
	Role          string
	Tagline       string
	Email         string
	GitHub        string
	LinkedIn      string
	AboutHeadline string
	AboutLead     string
	About         []string
	HeroPhrases   []string
}

type NavLink struct {
	Href  string
	Label string
}

// SkillCategory is one row of the skills showcase. Accent names the color
// family used for its highlight.
type SkillCategory struct {
	Name   string
	Accent string
	Items  []string
}

type Project struct {
	Title       string
	Slug        string
	Desc        string
	Detail      string
	Tags        []string
	GitHub      string
	Demo        string
	Screenshots []string
	VideoURL    string
}

// Challenge is the first sentence of the detail text.
func (p Project) Challenge() string {
	first, _, _ := strings.Cut(p.Detail, ".")
	return first + "."
}

// HeadlineTags returns at most the first three tags.
func (p Project) HeadlineTags() []string {
	if len(p.Tags) > 3 {
		return p.Tags[:3]
	}
	return p.Tags
}

type Certification struct {
	Name string
	Org  string
	Year string
	URL  string
}

type Site struct {
	Profile  Profile
	Nav      []NavLink
	Skills   []SkillCategory
	Projects []Project
	Certs    []Certification
}

// FindProject looks a project up by slug.
func (s *Site) FindProject(slug string) (Project, error) {
	for _, p := range s.Projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Project{}, ErrProjectNotFound
}

// Default returns a fresh copy of the built-in site content.
func Default() *Site {
	return &Site{
		Profile: Profile{
			Name:          "Your Name",
			Role:          "Cloud Engineer",
			Tagline:       "Building & managing cloud infrastructure with a focus on reliability, automation, and cost efficiency. AWS, Azure, GCP. Infrastructure as Code. Kubernetes.",
			Email:         "hello@example.com",
			GitHub:        "https://github.com",
			LinkedIn:      "https://linkedin.com",
			AboutHeadline: "Building reliable infrastructure at scale.",
			AboutLead:     "Cloud infrastructure shouldn't be overcomplicated. I focus on designing systems that are observable, secure, and cost-efficient from day one.",
			About: []string{
				`With years working across AWS, Azure, and GCP, I've learned that the best infrastructure is the one that doesn't
				require constant babysitting. That's why I prioritize solid fundamentals: clear IaC, proper CI/CD pipelines,
				and comprehensive observability.`,
				`Beyond code, I enjoy contributing to open source projects, writing technical documentation, and mentoring teams
				on cloud best practices. I believe great infrastructure comes from understanding both the business goals and
				the operational constraints.`,
			},
			HeroPhrases: []string{
				"Cloud Engineer",
				"Infrastructure as Code",
				"Kubernetes Operator",
				"Automation Enthusiast",
			},
		},
		Nav: []NavLink{
			{Href: "#about", Label: "about"},
			{Href: "#skills", Label: "skills"},
			{Href: "#projects", Label: "projects"},
			{Href: "#certs", Label: "credentials"},
			{Href: "#contact", Label: "contact"},
		},
		Skills: []SkillCategory{
			{Name: "Cloud Platforms", Accent: "sky", Items: []string{"AWS", "Azure", "Google Cloud", "DigitalOcean"}},
			{Name: "Infra as Code", Accent: "violet", Items: []string{"Terraform", "Ansible", "CloudFormation", "Pulumi"}},
			{Name: "Containers", Accent: "orange", Items: []string{"Docker", "Kubernetes", "Helm", "Istio"}},
			{Name: "CI/CD", Accent: "emerald", Items: []string{"GitHub Actions", "Jenkins", "ArgoCD", "GitLab CI"}},
			{Name: "Security & Net", Accent: "amber", Items: []string{"IAM / RBAC", "VPC Design", "Vault", "SSL / TLS"}},
			{Name: "Observability", Accent: "rose", Items: []string{"Prometheus", "Grafana", "ELK Stack", "Datadog"}},
		},
		Projects: []Project{
			{
				Title: "Multi-Cloud K8s Platform",
				Slug:  "multi-cloud-kubernetes-platform",
				Desc:  "Unified dashboard for managing Kubernetes clusters across AWS, Azure, and GCP. Centralized logging, metrics, and cost tracking.",
				Detail: `Operating clusters on three providers meant three consoles, three logging stacks and no shared view of cost.
				The platform registers every cluster through a Terraform module, ships logs and metrics to a central Prometheus
				and Loki deployment, and exposes a Go API that aggregates node, workload and spend data into a single dashboard.`,
				Tags:   []string{"Kubernetes", "Terraform", "Go", "Prometheus"},
				GitHub: "https://github.com/example/multi-cloud-k8s",
			},
			{
				Title: "Serverless Data Pipeline",
				Slug:  "serverless-data-pipeline",
				Desc:  "Event-driven pipeline processing 1M+ events/day using Lambda, Kinesis, and DynamoDB with sub-second latency.",
				Detail: `Batch ETL jobs were delivering analytics hours late. Events now land in Kinesis, fan out to Lambda consumers
				that enrich and validate them, and are written to DynamoDB with idempotent keys so retries never double count.`,
				Tags:   []string{"AWS Lambda", "Kinesis", "Python"},
				GitHub: "https://github.com/example/serverless-pipeline",
			},
			{
				Title: "Cloud Cost Optimizer",
				Slug:  "infrastructure-cost-optimizer",
				Desc:  "Open-source CLI + dashboard that analyzes multi-cloud spending and suggests savings. Avg 35% cost reduction.",
				Detail: `Idle and oversized resources were quietly inflating monthly bills. The optimizer pulls billing exports and
				utilization metrics through each provider's SDK, flags idle volumes and oversized instances, and produces a
				ranked list of savings with the exact change required.`,
				Tags:   []string{"Python", "React", "AWS SDK"},
				GitHub: "https://github.com/example/cost-optimizer",
			},
			{
				Title: "Zero-Downtime Migration",
				Slug:  "zero-downtime-migration-framework",
				Desc:  "Framework for live-migrating databases and services across providers using blue-green deploys and automated rollback.",
				Detail: `Moving production workloads between providers used to require a maintenance window. The framework provisions
				the target environment with Terraform, replicates data continuously, shifts traffic in weighted steps and rolls
				back automatically when health checks regress.`,
				Tags:   []string{"Terraform", "Ansible", "Docker"},
				GitHub: "https://github.com/example/zero-downtime-migration",
			},
			{
				Title: "CloudBox (Serverless Storage)",
				Slug:  "cloudbox-serverless-storage",
				Desc:  "A fully serverless file-storage platform using AWS S3, Lambda, API Gateway, and DynamoDB.",
				Detail: `CloudBox is a robust, serverless clone of Dropbox/Google Drive built entirely on AWS. It leverages S3 for
				scalable object storage and DynamoDB for metadata indexing. Authenticated users (via Cognito) can upload
				multi-part files, which triggers a Lambda pipeline for virus scanning and thumbnail generation. The
				infrastructure is defined as code using Terraform, ensuring reproducible deployments.`,
				Tags:   []string{"AWS Lambda", "S3", "API Gateway", "DynamoDB", "Terraform", "GitHub Actions"},
				GitHub: "https://github.com/example/cloudbox",
				Demo:   "https://cloudbox.example.com",
				Screenshots: []string{
					"https://placehold.co/1920x1080/1e1e2e/6366f1?text=CloudBox+Dashboard&font=roboto",
					"https://placehold.co/1920x1080/1e1e2e/8b5cf6?text=File+Upload+Interface&font=roboto",
				},
			},
			{
				Title: "Bid Brush - Art Auction Platform",
				Slug:  "bid-brush-auction",
				Desc:  "Real-time e-commerce platform for artists to auction artwork.",
				Detail: `Bid Brush connects independent artists with collectors through a real-time bidding system. Built with Flutter
				for a cross-platform mobile experience, it uses Firebase Realtime Database to push live bid updates without
				polling. Secure payments are handled via Razorpay integration, and the backend logic enforces auction expiry
				and winner declaration automatically.`,
				Tags:   []string{"Flutter", "Dart", "Firebase", "Razorpay"},
				GitHub: "https://github.com/example/bid-brush",
				Demo:   "https://bidbrush.example.com",
				Screenshots: []string{
					"https://placehold.co/1080x1920/1e1e2e/ec4899?text=Bid+Brush+Feed&font=roboto",
					"https://placehold.co/1080x1920/1e1e2e/14b8a6?text=Auction+Detail+View&font=roboto",
				},
			},
		},
		Certs: []Certification{
			{Name: "AWS Solutions Architect Professional", Org: "Amazon Web Services", Year: "2024", URL: "https://www.credly.com/badges/aws-solutions-architect-professional"},
			{Name: "Certified Kubernetes Administrator", Org: "CNCF", Year: "2023", URL: "https://www.credly.com/badges/cka"},
			{Name: "GCP Professional Cloud Architect", Org: "Google Cloud", Year: "2023", URL: "https://www.credential.net/google-cloud-architect"},
			{Name: "Terraform Associate", Org: "HashiCorp", Year: "2022", URL: "https://www.credly.com/badges/terraform-associate"},
			{Name: "Azure Solutions Architect Expert", Org: "Microsoft", Year: "2022", URL: "https://learn.microsoft.com/en-us/certifications/azure-solutions-architect/"},
		},
	}
}
