package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/listing-monitor/internal/domain"
)

// Маркер "поднятого" объявления, который сайт дописывает к локации
const bumpedMarker = "odświeżono"

// LocationResolver превращает сырую строку локации объявления в пару
// (город, район) из таксономии, создавая недостающие записи.
// Разбор тотален: любой вход даёт осмысленную пару, в худшем случае
// заглушки "Unknown".
type LocationResolver struct {
	taxonomy *TaxonomyUseCase
	logger   *zap.Logger
}

// NewLocationResolver создает новый LocationResolver
func NewLocationResolver(taxonomy *TaxonomyUseCase, logger *zap.Logger) *LocationResolver {
	return &LocationResolver{
		taxonomy: taxonomy,
		logger:   logger,
	}
}

// Resolve разбирает строку локации и возвращает город, район и очищенную
// строку для хранения. Ошибки возможны только от хранилища; кривой вход
// ошибкой не является.
func (r *LocationResolver) Resolve(ctx context.Context, rawLocation string) (*domain.ResolvedLocation, string, error) {
	cleaned := CleanLocation(rawLocation)
	cityName, districtName := parseLocation(cleaned)

	city, err := r.taxonomy.GetOrCreateCity(ctx, cityName)
	if err != nil {
		return nil, cleaned, err
	}

	district, err := r.taxonomy.GetOrCreateDistrict(ctx, city.ID, districtName)
	if err != nil {
		return nil, cleaned, err
	}

	if cityName == domain.UnknownName {
		r.logger.Debug("Location resolved to sentinel",
			zap.String("raw_location", rawLocation))
	}

	return &domain.ResolvedLocation{
		City:     city,
		District: district,
	}, cleaned, nil
}

// CleanLocation обрезает маркер "Odświeżono" (оба варианта, с дефисом
// и без пробела после него, без учёта регистра) и лишние пробелы
func CleanLocation(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	lower := strings.ToLower(s)
	for _, suffix := range []string{"- " + bumpedMarker, "-" + bumpedMarker} {
		if strings.HasSuffix(lower, suffix) {
			s = strings.TrimSpace(s[:len(s)-len(suffix)])
			break
		}
	}
	return s
}

// parseLocation разбирает очищенную локацию на имена города и района.
// "Warszawa, Mokotów" -> ("Warszawa", "Mokotów");
// "Warszawa" -> ("Warszawa", "Unknown"); пусто -> обе заглушки.
// Сегменты после второго игнорируются.
func parseLocation(cleaned string) (cityName, districtName string) {
	cityName = domain.UnknownName
	districtName = domain.UnknownName

	if cleaned == "" {
		return cityName, districtName
	}

	segments := strings.Split(cleaned, ",")
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if trimmed := strings.TrimSpace(seg); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	switch {
	case len(parts) >= 2:
		cityName = parts[0]
		districtName = parts[1]
	case len(parts) == 1:
		cityName = parts[0]
	}
	return cityName, districtName
}
