package placedirectory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/roamplan/roam/pkg/travelplan"
	"github.com/roamplan/roam/pkg/util"
)

const placesAPIBaseURL = "https://maps.googleapis.com/maps/api/place"

const defaultCategory = "tourist_attraction"

var supportedCategories = []string{
	"tourist_attraction",
	"museum",
	"park",
	"restaurant",
	"cafe",
	"shopping_mall",
}

// Directory is the Place Directory backed by the Google Places web
// service. Responses are cached so repeated marker clicks on the same
// place do not burn quota.
type Directory struct {
	APIKey   string
	Language string

	HTTPClient *http.Client

	cache *directoryCache
}

func NewDirectory() *Directory {
	env := util.GetEnvironmentVariables()

	return &Directory{
		APIKey:     env["ROAM_PLACES_API_KEY"],
		Language:   util.GetEnvironmentVariable("ROAM_PLACES_LANGUAGE", "zh-TW"),
		HTTPClient: http.DefaultClient,
	}
}

// EnableCache attaches the redis backed response cache. Callers that
// never enable it (tests, one-shot imports) hit the API directly.
func (d *Directory) EnableCache() {
	d.cache = newDirectoryCache()
}

func (d *Directory) NearbySearch(ctx context.Context, center travelplan.Location, radiusMeters int, category string) ([]travelplan.CandidatePlace, error) {
	if !util.ContainsString(supportedCategories, category) {
		category = defaultCategory
	}

	query := url.Values{}
	query.Set("location", fmt.Sprintf("%f,%f", center.Latitude(), center.Longitude()))
	query.Set("radius", fmt.Sprintf("%d", radiusMeters))
	query.Set("type", category)
	query.Set("language", d.Language)
	query.Set("key", d.APIKey)

	cacheKey := fmt.Sprintf("placedirectory/nearby/%f/%f/%d/%s", center.Latitude(), center.Longitude(), radiusMeters, category)

	body, err := d.get(ctx, fmt.Sprintf("%s/nearbysearch/json?%s", placesAPIBaseURL, query.Encode()), cacheKey)
	if err != nil {
		return nil, err
	}

	searchResponse := nearbySearchResponse{}
	if err := json.Unmarshal(body, &searchResponse); err != nil {
		return nil, err
	}
	if searchResponse.Status != "OK" && searchResponse.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("place directory rejected nearby search: %s", searchResponse.Status)
	}

	var candidates []travelplan.CandidatePlace
	for _, result := range searchResponse.Results {
		candidates = append(candidates, result.AsCandidatePlace())
	}

	return candidates, nil
}

func (d *Directory) PlaceDetail(ctx context.Context, placeRef string) (*travelplan.CandidatePlace, error) {
	query := url.Values{}
	query.Set("place_id", placeRef)
	query.Set("fields", "place_id,name,formatted_address,geometry,rating,photos")
	query.Set("language", d.Language)
	query.Set("key", d.APIKey)

	cacheKey := fmt.Sprintf("placedirectory/detail/%s", placeRef)

	body, err := d.get(ctx, fmt.Sprintf("%s/details/json?%s", placesAPIBaseURL, query.Encode()), cacheKey)
	if err != nil {
		return nil, err
	}

	detailResponse := placeDetailResponse{}
	if err := json.Unmarshal(body, &detailResponse); err != nil {
		return nil, err
	}
	if detailResponse.Status != "OK" {
		return nil, fmt.Errorf("place directory rejected detail lookup: %s", detailResponse.Status)
	}

	candidate := detailResponse.Result.AsCandidatePlace()

	return &candidate, nil
}

func (d *Directory) get(ctx context.Context, requestURL string, cacheKey string) ([]byte, error) {
	if d.cache != nil {
		if cached, err := d.cache.Get(ctx, cacheKey); err == nil {
			return cached, nil
		}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	response, err := d.HTTPClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if d.cache != nil {
		d.cache.Set(ctx, cacheKey, body)
	}

	return body, nil
}

type nearbySearchResponse struct {
	Status  string        `json:"status"`
	Results []placeResult `json:"results"`
}

type placeDetailResponse struct {
	Status string      `json:"status"`
	Result placeResult `json:"result"`
}

type placeResult struct {
	PlaceID          string  `json:"place_id"`
	Name             string  `json:"name"`
	Vicinity         string  `json:"vicinity"`
	FormattedAddress string  `json:"formatted_address"`
	Rating           float64 `json:"rating"`

	Geometry struct {
		Location struct {
			Latitude  float64 `json:"lat"`
			Longitude float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`

	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
}

func (r *placeResult) AsCandidatePlace() travelplan.CandidatePlace {
	address := r.FormattedAddress
	if address == "" {
		address = r.Vicinity
	}

	candidate := travelplan.CandidatePlace{
		PlaceRef:    r.PlaceID,
		PrimaryName: r.Name,
		Address:     address,
		Rating:      r.Rating,
		Location:    travelplan.NewLocation(r.Geometry.Location.Latitude, r.Geometry.Location.Longitude),
	}

	for _, photo := range r.Photos {
		candidate.Photos = append(candidate.Photos, photo.PhotoReference)
	}

	return candidate
}
