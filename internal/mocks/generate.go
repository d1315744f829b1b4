package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/roundstat --output domain/roundstat --outpkg roundstatmock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Store --dir ../domain/selection --output domain/selection --outpkg selectionmock --filename store_mock.go
