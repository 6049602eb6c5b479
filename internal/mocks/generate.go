package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/discipline --output domain/discipline --outpkg disciplinemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name UnitOfWork --dir ../domain/discipline --output domain/discipline --outpkg disciplinemock --filename unit_of_work_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name QueryRepository --dir ../domain/discipline --output domain/discipline --outpkg disciplinemock --filename query_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/fixture --output domain/fixture --outpkg fixturemock --filename repository_mock.go
