//go:generate mockgen -destination=./mock_logger.go   -package=mocks github.com/Gunvolt24/slf4g/pkg/slf4g Logger,LoggerFactory
//go:generate mockgen -destination=./mock_resolver.go -package=mocks github.com/Gunvolt24/slf4g/pkg/slf4g Resolver,Loader

package mocks
