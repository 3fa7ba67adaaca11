package routes

import (
	"underrated/auth"
	"underrated/contacts"
	"underrated/middleware"
	"underrated/places"
	"underrated/ratelim"
	"underrated/reviews"
	"underrated/testimonials"
	"underrated/users"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(auth.Login))
}

func AddPlaceRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/places", places.GetPlaces)
	router.GET("/api/places/:id", places.GetPlace)
	router.POST("/api/places", middleware.Authenticate(places.CreatePlace))
	router.POST("/api/places/upload", middleware.Authenticate(places.UploadImage))
	router.PUT("/api/places/:id", middleware.Authenticate(places.UpdatePlace))
	router.DELETE("/api/places/:id", middleware.Authenticate(places.DeletePlace))
}

func AddReviewsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/reviews", reviews.GetReviews)
	router.POST("/api/reviews", rl.Limit(reviews.CreateReview))
	router.PUT("/api/reviews/:id", middleware.Authenticate(reviews.UpdateReview))
	router.DELETE("/api/reviews/:id", middleware.Authenticate(reviews.DeleteReview))
}

func AddContactRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/contacts", rl.Limit(contacts.SubmitContact))
	router.GET("/api/contacts", middleware.Authenticate(contacts.GetSubmissions))
	router.PUT("/api/contacts/:id", middleware.Authenticate(contacts.UpdateStatus))
	router.DELETE("/api/contacts/:id", middleware.Authenticate(contacts.DeleteSubmission))
}

func AddUserRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/users/contact", rl.Limit(users.SubmitContact))
	router.GET("/api/users/contacts", middleware.Authenticate(users.GetContacts))
	router.PUT("/api/users/contacts/:id", middleware.Authenticate(users.UpdateStatus))
	router.DELETE("/api/users/contacts/:id", middleware.Authenticate(users.DeleteContact))
}

func AddTestimonialRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/testimonials", testimonials.GetTestimonials)
	router.POST("/api/testimonials", middleware.Authenticate(testimonials.CreateTestimonial))
	router.PUT("/api/testimonials/:id", middleware.Authenticate(testimonials.UpdateTestimonial))
	router.DELETE("/api/testimonials/:id", middleware.Authenticate(testimonials.DeleteTestimonial))
}

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	AddAuthRoutes(router, rateLimiter)
	AddPlaceRoutes(router, rateLimiter)
	AddReviewsRoutes(router, rateLimiter)
	AddContactRoutes(router, rateLimiter)
	AddUserRoutes(router, rateLimiter)
	AddTestimonialRoutes(router, rateLimiter)
}
