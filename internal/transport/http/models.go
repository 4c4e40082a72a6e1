package http

// ErrorResponse represents a generic error payload.
type ErrorResponse struct {
	Error string `json:"error" example:"authentication required"`
}

// SuccessResponse denotes a simple success flag.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// LoginRequest carries the shared admin credential pair.
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"admin123"`
}

// AuthCheckResponse is returned by the auth-check endpoint.
type AuthCheckResponse struct {
	Authenticated bool `json:"authenticated" example:"true"`
}

// ProjectRequest carries project create/update fields; Update additionally
// requires ID.
type ProjectRequest struct {
	ID           int64    `json:"id,omitempty" example:"3"`
	Title        string   `json:"title" example:"متجر إلكتروني"`
	Description  string   `json:"description" example:"متجر إلكتروني متكامل مع لوحة تحكم"`
	Image        string   `json:"image" example:"https://cdn.example.com/shop.png"`
	SubImages    []string `json:"subImages,omitempty"`
	Technologies []string `json:"technologies,omitempty" example:"Next.js,Tailwind"`
	GithubURL    string   `json:"githubUrl,omitempty" example:"https://github.com/example/shop"`
	LiveURL      string   `json:"liveUrl,omitempty" example:"https://shop.example.com"`
	Category     string   `json:"category" example:"web"`
}

// PreviewRequestCreate is a visitor lead submission.
type PreviewRequestCreate struct {
	ProjectID    int64  `json:"projectId" example:"3"`
	ProjectTitle string `json:"projectTitle" example:"متجر إلكتروني"`
	Name         string `json:"name" example:"محمد"`
	Email        string `json:"email" example:"visitor@example.com"`
	Phone        string `json:"phone" example:"+9665xxxxxxx"`
	Message      string `json:"message,omitempty"`
}

// PreviewRequestStatusUpdate updates the handling status of a lead.
type PreviewRequestStatusUpdate struct {
	ID     int64  `json:"id" example:"7"`
	Status string `json:"status" example:"viewed"`
}

// ContactRequest is a contact-form submission.
type ContactRequest struct {
	Name    string `json:"name" example:"محمد"`
	Email   string `json:"email" example:"visitor@example.com"`
	Subject string `json:"subject" example:"استفسار"`
	Message string `json:"message" example:"أريد موقعاً مشابهاً"`
}

// UploadResponse is returned after a successful image upload.
type UploadResponse struct {
	URL string `json:"url" example:"https://cdn.example.com/portfolio-uploads/projects/1f2e.png"`
}
