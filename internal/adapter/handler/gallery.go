package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hackinsight-team/hackinsight/errors"
	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
)

// galleryImages maps each showcased domain to one curated photo per event
// day, indexed day-1.
var galleryImages = map[string][3]string{
	"Web Development": {
		"https://img.freepik.com/free-photo/programming-background-with-person-working-with-codes-computer_23-2150010125.jpg?w=740",
		"https://img.freepik.com/free-photo/close-up-image-programer-working-his-desk-office_1098-18707.jpg?w=740",
		"https://img.freepik.com/free-photo/rear-view-programmer-working-all-night-long_1098-18697.jpg?w=740",
	},
	"Mobile App Development": {
		"https://img.freepik.com/free-vector/app-development-banner_33099-1720.jpg",
		"https://media.istockphoto.com/id/1174690086/photo/software-developer-freelancer-working-at-home.jpg?s=612x612",
		"https://lh4.googleusercontent.com/-z2_WPcZpaj3lKM_KpyyklucmrEi7SGyo8RvBJuF2GVYsTMGCRVP7-8_0bQ8_-40PN-P9K8ugGU1T2r-a92qjkndpp1J84I3s2Fyc0a-f0L-dp4V-YpfzOdEuOvDHXUN79vpFUM-q7PI7B7i9pW1CEw",
	},
	"AI/ML": {
		"https://eu-images.contentstack.com/v3/assets/blt8eb3cdfc1fce5194/bltf3fad4d36b8893e7/662109ea5dcbd66010a70c19/2CND889.jpg?width=1280",
		"https://www.igtsolutions.com/wp-content/uploads/2021/10/ai-featured-img.jpg",
		"https://www.supermomos.com/_next/image?url=https%3A%2F%2Fsupermomos-app-resources-us.s3.amazonaws.com%2Fpublic%2Fsocial_banners%2F1ab33d01-3c39-434a-be4e-3cf85fd8f4ce.png&w=1920&q=75",
	},
	"Blockchain": {
		"https://fintechweekly.s3.amazonaws.com/article/191/shutterstock_1016393917.jpg",
		"https://bernardmarr.com/wp-content/uploads/2023/05/The-5-Biggest-Problems-With-Blockchain-Technology-Everyone-Must-Know-About-1.jpg",
		"https://www.accesswire.com/imagelibrary/42fbae3c-c412-43bf-a1e5-15073781f7b1/927945/Future_Blockchain_Summit_beauty_shot.jpg",
	},
	"IoT": {
		"https://online.keele.ac.uk/wp-content/uploads/2024/05/IoT.jpg",
		"https://studyonline.unsw.edu.au/sites/default/files/field/image/KP%20AUS%20UNSW%20Q2%202022%20Skyscraper%20%233%20What%20is%20the%20Internet%20of%20Things%20%28IoT%29-01%201000X667.jpg",
		"https://blog.raxsuite.com/wp-content/uploads/2023/07/IoT-Conference-2023-01.png",
	},
}

// galleryOrder keeps the response stable across calls
var galleryOrder = []string{
	"Web Development", "Mobile App Development", "AI/ML", "Blockchain", "IoT",
}

// GalleryEntry is one curated photo for a domain on a given day
type GalleryEntry struct {
	Domain string `json:"domain"`
	Day    int    `json:"day"`
	URL    string `json:"url"`
}

// Gallery serves the curated event photo wall
type Gallery struct {
	logger *zap.Logger
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(logger *zap.Logger) *Gallery {
	return &Gallery{logger: logger}
}

// List handles GET /v1/gallery. Query params: day (1..3, default 1) and
// repeated domain params; no domain param selects every showcased domain.
func (h *Gallery) List(c echo.Context) error {
	day := 1
	if raw := c.QueryParam("day"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > entities.EventDays {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("day must be between 1 and 3"))
		}
		day = parsed
	}

	domains := c.QueryParams()["domain"]
	if len(domains) == 0 {
		domains = galleryOrder
	}

	entries := make([]GalleryEntry, 0, len(domains))
	for _, domain := range domains {
		urls, ok := galleryImages[domain]
		if !ok {
			return HandleError(h.logger, c,
				errors.ErrInvalidArgument("no gallery images for domain").WithDetail("domain", domain))
		}
		entries = append(entries, GalleryEntry{
			Domain: domain,
			Day:    day,
			URL:    urls[day-1],
		})
	}

	return HandleSuccess(h.logger, c, entries)
}
