package cmd

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/speedyrails/oneoff/config"
)

// getSession resolves AWS credentials and region for the run. An explicit
// region is validated against the known ECS regions before any API call.
func getSession(profile, region string) (*session.Session, error) {
	switch {
	case profile != "" && region != "":
		return session.NewSessionWithOptions(session.Options{
			Profile:           profile,
			Config:            *aws.NewConfig().WithRegion(region).WithMaxRetries(8),
			SharedConfigState: session.SharedConfigEnable,
		})
	case profile != "":
		return session.NewSessionWithOptions(session.Options{
			Profile:           profile,
			SharedConfigState: session.SharedConfigEnable,
		})
	case region != "":
		if !config.ValidRegion(region) {
			return nil, fmt.Errorf("The specified region %s is not a valid AWS region", region)
		}
		return session.NewSession(aws.NewConfig().WithRegion(region).WithMaxRetries(8))
	default:
		return session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
		})
	}
}

func sessionRegion(sess *session.Session) string {
	return aws.StringValue(sess.Config.Region)
}
