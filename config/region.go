package config

import (
	"github.com/aws/aws-sdk-go/aws/endpoints"
)

// ValidRegion reports whether ECS is available in the given region
func ValidRegion(region string) bool {
	for _, partition := range endpoints.DefaultPartitions() {
		svc, ok := partition.Services()[endpoints.EcsServiceID]
		if !ok {
			continue
		}
		if _, ok := svc.Regions()[region]; ok {
			return true
		}
	}
	return false
}
