package handlers

import (
	"net/http"

	"github.com/cortylix/site-go/pkg/response"
	"github.com/gin-gonic/gin"
)

// ContentHandler serves the static marketing copy rendered on the home and
// services pages. The copy lives here rather than the database; it changes
// with deployments, not through the admin panel.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

type serviceEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type testimonialEntry struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

type statEntry struct {
	Value  int    `json:"value"`
	Suffix string `json:"suffix"`
	Label  string `json:"label"`
}

var services = []serviceEntry{
	{Title: "IT Support", Description: "24/7 remote and onsite technical support with rapid response times."},
	{Title: "AI & Machine Learning", Description: "Custom AI solutions to automate processes and unlock insights."},
	{Title: "Web Hosting", Description: "High-performance hosting with 99.9% uptime guarantee."},
	{Title: "Cloud Solutions", Description: "Scalable cloud infrastructure and storage solutions."},
	{Title: "Software Development", Description: "Custom web and mobile applications built for your needs."},
	{Title: "Cybersecurity", Description: "Comprehensive security solutions to protect your business."},
}

var testimonials = []testimonialEntry{
	{
		Quote:  "Cortylix transformed our IT infrastructure. Their 24/7 support has been invaluable for our operations.",
		Author: "Sarah Chen",
		Role:   "CTO, TechVentures Inc.",
		Avatar: "SC",
	},
	{
		Quote:  "The AI solution they built increased our efficiency by 60%. Highly recommend their ML expertise.",
		Author: "Michael Roberts",
		Role:   "Director of Operations, DataFlow",
		Avatar: "MR",
	},
	{
		Quote:  "Professional, responsive, and innovative. Cortylix is our go-to partner for all technology needs.",
		Author: "Emily Johnson",
		Role:   "CEO, GrowthScale",
		Avatar: "EJ",
	},
}

var stats = []statEntry{
	{Value: 150, Suffix: "+", Label: "Happy Clients"},
	{Value: 500, Suffix: "+", Label: "Projects Completed"},
	{Value: 10, Suffix: "+", Label: "Years of Experience"},
	{Value: 5, Suffix: "M+", Label: "Revenue Generated"},
}

// Services godoc
// @Summary Service catalog shown on the services page
// @Tags content
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /content/services [get]
func (h *ContentHandler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, response.SuccessResponse{Data: services})
}

// Testimonials godoc
// @Summary Client testimonials shown on the home page
// @Tags content
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /content/testimonials [get]
func (h *ContentHandler) Testimonials(c *gin.Context) {
	c.JSON(http.StatusOK, response.SuccessResponse{Data: testimonials})
}

// Stats godoc
// @Summary Company stats shown in the home page counters
// @Tags content
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /content/stats [get]
func (h *ContentHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, response.SuccessResponse{Data: stats})
}
