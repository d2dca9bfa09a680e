package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/listing-monitor/internal/domain"
)

func TestCleanLocation(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "plain location untouched",
			raw:      "Warszawa, Mokotów",
			expected: "Warszawa, Mokotów",
		},
		{
			name:     "strips bumped marker with spaced hyphen",
			raw:      "Warszawa, Mokotów - Odświeżono",
			expected: "Warszawa, Mokotów",
		},
		{
			name:     "strips bumped marker with tight hyphen",
			raw:      "Warszawa, Mokotów -Odświeżono",
			expected: "Warszawa, Mokotów",
		},
		{
			name:     "case insensitive marker",
			raw:      "Kraków - ODŚWIEŻONO",
			expected: "Kraków",
		},
		{
			name:     "marker in the middle stays",
			raw:      "Odświeżono, Mokotów",
			expected: "Odświeżono, Mokotów",
		},
		{
			name:     "bare marker without hyphen stays",
			raw:      "Warszawa Odświeżono",
			expected: "Warszawa Odświeżono",
		},
		{
			name:     "trims surrounding whitespace",
			raw:      "  Gdańsk, Wrzeszcz  ",
			expected: "Gdańsk, Wrzeszcz",
		},
		{
			name:     "empty input",
			raw:      "",
			expected: "",
		},
		{
			name:     "whitespace only",
			raw:      "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanLocation(tt.raw))
		})
	}
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name         string
		cleaned      string
		wantCity     string
		wantDistrict string
	}{
		{
			name:         "city and district",
			cleaned:      "Warszawa, Mokotów",
			wantCity:     "Warszawa",
			wantDistrict: "Mokotów",
		},
		{
			name:         "city only",
			cleaned:      "Warszawa",
			wantCity:     "Warszawa",
			wantDistrict: domain.UnknownName,
		},
		{
			name:         "extra segments ignored",
			cleaned:      "Warszawa, Mokotów, Służewiec, extra",
			wantCity:     "Warszawa",
			wantDistrict: "Mokotów",
		},
		{
			name:         "empty string gives sentinels",
			cleaned:      "",
			wantCity:     domain.UnknownName,
			wantDistrict: domain.UnknownName,
		},
		{
			name:         "only commas gives sentinels",
			cleaned:      ", ,",
			wantCity:     domain.UnknownName,
			wantDistrict: domain.UnknownName,
		},
		{
			name:         "empty first segment skipped",
			cleaned:      ", Mokotów",
			wantCity:     "Mokotów",
			wantDistrict: domain.UnknownName,
		},
		{
			name:         "segments trimmed",
			cleaned:      "  Warszawa ,  Mokotów ",
			wantCity:     "Warszawa",
			wantDistrict: "Mokotów",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, district := parseLocation(tt.cleaned)
			assert.Equal(t, tt.wantCity, city)
			assert.Equal(t, tt.wantDistrict, district)
		})
	}
}

func TestLocationResolver_Resolve(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	newResolver := func(cityRepo *MockCityRepository, districtRepo *MockDistrictRepository) *LocationResolver {
		taxonomy := NewTaxonomyUseCase(cityRepo, districtRepo, &MockCacheRepository{}, logger, time.Minute)
		return NewLocationResolver(taxonomy, logger)
	}

	t.Run("resolves city and district with normalization", func(t *testing.T) {
		cityRepo := &MockCityRepository{}
		districtRepo := &MockDistrictRepository{}
		resolver := newResolver(cityRepo, districtRepo)

		city := &domain.City{ID: 1, NameRaw: "Warszawa", NameNormalized: "warszawa"}
		district := &domain.District{ID: 10, CityID: 1, NameRaw: "Mokotów", NameNormalized: "mokotow"}

		cityRepo.On("GetOrCreate", ctx, "Warszawa", "warszawa").Return(city, nil)
		districtRepo.On("GetOrCreate", ctx, int64(1), "Mokotów", "mokotow").Return(district, nil)

		resolved, cleaned, err := resolver.Resolve(ctx, "Warszawa, Mokotów - Odświeżono")

		assert.NoError(t, err)
		assert.Equal(t, "Warszawa, Mokotów", cleaned)
		assert.Equal(t, city, resolved.City)
		assert.Equal(t, district, resolved.District)
		cityRepo.AssertExpectations(t)
		districtRepo.AssertExpectations(t)
	})

	t.Run("empty location resolves to sentinels", func(t *testing.T) {
		cityRepo := &MockCityRepository{}
		districtRepo := &MockDistrictRepository{}
		resolver := newResolver(cityRepo, districtRepo)

		city := &domain.City{ID: 5, NameRaw: domain.UnknownName, NameNormalized: domain.UnknownNameNormalized}
		district := &domain.District{ID: 50, CityID: 5, NameRaw: domain.UnknownName, NameNormalized: domain.UnknownNameNormalized}

		cityRepo.On("GetOrCreate", ctx, domain.UnknownName, domain.UnknownNameNormalized).Return(city, nil)
		districtRepo.On("GetOrCreate", ctx, int64(5), domain.UnknownName, domain.UnknownNameNormalized).Return(district, nil)

		resolved, cleaned, err := resolver.Resolve(ctx, "   ")

		assert.NoError(t, err)
		assert.Equal(t, "", cleaned)
		assert.Equal(t, domain.UnknownName, resolved.City.NameRaw)
		assert.Equal(t, domain.UnknownName, resolved.District.NameRaw)
	})

	t.Run("city only gets unknown district", func(t *testing.T) {
		cityRepo := &MockCityRepository{}
		districtRepo := &MockDistrictRepository{}
		resolver := newResolver(cityRepo, districtRepo)

		city := &domain.City{ID: 2, NameRaw: "Kraków", NameNormalized: "krakow"}
		district := &domain.District{ID: 20, CityID: 2, NameRaw: domain.UnknownName, NameNormalized: domain.UnknownNameNormalized}

		cityRepo.On("GetOrCreate", ctx, "Kraków", "krakow").Return(city, nil)
		districtRepo.On("GetOrCreate", ctx, int64(2), domain.UnknownName, domain.UnknownNameNormalized).Return(district, nil)

		resolved, _, err := resolver.Resolve(ctx, "Kraków")

		assert.NoError(t, err)
		assert.Equal(t, "krakow", resolved.City.NameNormalized)
		assert.Equal(t, domain.UnknownNameNormalized, resolved.District.NameNormalized)
	})
}
