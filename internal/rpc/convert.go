package rpc

import (
	routeguidev1 "go.arvo.ch/waymark/api/routeguide/v1"
	"go.arvo.ch/waymark/internal/core/domain"
)

func toDomainPoint(p *routeguidev1.Point) domain.Point {
	return domain.Point{
		Latitude:  p.GetLatitude(),
		Longitude: p.GetLongitude(),
	}
}

func fromDomainPoint(p domain.Point) *routeguidev1.Point {
	return &routeguidev1.Point{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}

func toDomainRectangle(r *routeguidev1.Rectangle) domain.Rectangle {
	return domain.Rectangle{
		Lo: toDomainPoint(r.GetLo()),
		Hi: toDomainPoint(r.GetHi()),
	}
}

func fromDomainFeature(f domain.Feature) *routeguidev1.Feature {
	return &routeguidev1.Feature{
		Name:     f.Name.String(),
		Location: fromDomainPoint(f.Location),
	}
}

func toDomainNote(n *routeguidev1.RouteNote) domain.RouteNote {
	return domain.RouteNote{
		Location: toDomainPoint(n.GetLocation()),
		Message:  n.GetMessage(),
	}
}

func fromDomainNote(n domain.RouteNote) *routeguidev1.RouteNote {
	return &routeguidev1.RouteNote{
		Location: fromDomainPoint(n.Location),
		Message:  n.Message,
	}
}
