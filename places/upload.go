package places

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"sync"

	"underrated/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

const (
	uploadFolder   = "underrated_places"
	maxUploadBytes = 15 << 20
	maxImageWidth  = 1600
)

var (
	cldOnce sync.Once
	cld     *cloudinary.Cloudinary
	cldErr  error
)

// cloudinaryClient reads CLOUDINARY_URL on first use.
func cloudinaryClient() (*cloudinary.Cloudinary, error) {
	cldOnce.Do(func() {
		cld, cldErr = cloudinary.New()
	})
	return cld, cldErr
}

// UploadImage accepts a multipart `image` field, normalizes it, and returns
// the hosted URL. Oversized images are downscaled before leaving the server
// so the image host never stores multi-megapixel originals.
func UploadImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported image file")
		return
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Image encoding failed")
		return
	}

	client, err := cloudinaryClient()
	if err != nil {
		log.Printf("places: cloudinary init failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
		return
	}

	resp, err := client.Upload.Upload(r.Context(), &buf, uploader.UploadParams{
		Folder:   uploadFolder,
		PublicID: fmt.Sprintf("place_%s", utils.GetUUID()),
	})
	if err != nil {
		log.Printf("places: cloudinary upload failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Image upload failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"url": resp.SecureURL})
}
