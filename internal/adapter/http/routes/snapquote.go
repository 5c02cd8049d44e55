package routes

import (
	"snapbook/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSnapQuotes   = "/snap-quotes"
	PathProviderJobs = "/provider/jobs"
)

func addSnapQuoteRoutes(rg *gin.RouterGroup, snapQuoteHandler *handlers.SnapQuoteHandler, bookingHandler *handlers.BookingHandler, providerJobsHandler *handlers.ProviderJobsHandler) {
	quotes := rg.Group(PathSnapQuotes)
	{
		quotes.POST("", snapQuoteHandler.CreateSnapQuote)
		quotes.POST("/:quote_id/book", bookingHandler.BookSnapQuote)
	}

	jobs := rg.Group(PathProviderJobs)
	{
		jobs.GET("/:engagement_id/context", providerJobsHandler.GetJobContext)
		jobs.POST("/:engagement_id/arrival-photo", providerJobsHandler.UploadArrivalPhoto)
	}
}
