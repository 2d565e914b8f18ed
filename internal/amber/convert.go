package amber

import (
	"errors"
	"time"

	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

// ErrNoGeneralChannel is returned when the provider response contains no
// general-channel reading to normalize.
var ErrNoGeneralChannel = errors.New("amber: no general channel reading")

const channelGeneral = "general"

// ToPriceReading normalizes raw interval readings into a single
// comparable PriceReading. The general channel carries overall grid
// pricing; solar feed-in and controlled-load channels are ignored.
// Price falls back from perKwh to spotPerKwh to zero; renewables
// defaults to zero when absent.
func ToPriceReading(readings []IntervalReading) (*domain.PriceReading, error) {
	var general *IntervalReading
	for i := range readings {
		if readings[i].ChannelType == channelGeneral {
			general = &readings[i]
			break
		}
	}
	if general == nil {
		return nil, ErrNoGeneralChannel
	}

	var price float64
	switch {
	case general.PerKwh != nil:
		price = *general.PerKwh
	case general.SpotPerKwh != nil:
		price = *general.SpotPerKwh
	}

	var renewables float64
	if general.Renewables != nil {
		renewables = *general.Renewables
	}

	observed := time.Now()
	if general.NemTime != nil && !general.NemTime.IsZero() {
		observed = *general.NemTime
	} else if !general.EndTime.IsZero() {
		observed = general.EndTime
	}

	return &domain.PriceReading{
		Price:             price,
		RenewablesPercent: renewables,
		ObservedAt:        observed,
	}, nil
}
