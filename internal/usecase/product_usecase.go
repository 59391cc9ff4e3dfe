package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	idGen        IDGenerator
	clock        Clock
}

func NewProductUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
	idGen IDGenerator,
	clock Clock,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		idGen:        idGen,
		clock:        clock,
	}
}

type ProductInput struct {
	Title           string
	Description     string
	Price           int64
	DiscountedPrice int64
	Quantity        int64
	Live            bool
	Stock           bool
}

type ListInput struct {
	PageNumber int
	PageSize   int
	SortBy     string
	SortDir    string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in ProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Title) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "product title required")
	}
	if in.Price < 0 || in.DiscountedPrice < 0 || in.Quantity < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product values")
	}

	p := model.Product{
		ID:              u.idGen.NewID(),
		Title:           in.Title,
		Description:     in.Description,
		Price:           in.Price,
		DiscountedPrice: in.DiscountedPrice,
		Quantity:        in.Quantity,
		AddedDate:       u.clock.Now(),
		Live:            in.Live,
		Stock:           in.Stock,
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// CreateProductWithCategory はカテゴリ配下に商品を作る。
func (u *ProductUsecase) CreateProductWithCategory(ctx context.Context, categoryID string, in ProductInput) (model.Product, error) {
	if _, err := u.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "category not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.CreateProduct(ctx, in)
	if err != nil {
		return model.Product{}, err
	}

	created.CategoryID = &categoryID
	if err := u.productRepo.Update(ctx, created); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID string, in ProductInput) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p.Title = in.Title
	p.Description = in.Description
	p.Price = in.Price
	p.DiscountedPrice = in.DiscountedPrice
	p.Quantity = in.Quantity
	p.Live = in.Live
	p.Stock = in.Stock

	if err := u.productRepo.Update(ctx, p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// AssignCategory は既存商品にカテゴリを付け替える。
func (u *ProductUsecase) AssignCategory(ctx context.Context, productID string, categoryID string) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if _, err := u.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "category not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p.CategoryID = &categoryID
	if err := u.productRepo.Update(ctx, p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID string) error {
	if err := u.productRepo.DeleteByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) GetAllProducts(ctx context.Context, in ListInput) (ProductListOutput, error) {
	items, total, err := u.productRepo.List(ctx, toPageQuery(in))
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ProductListOutput{Items: items, Total: total}, nil
}

func (u *ProductUsecase) GetAllLiveProducts(ctx context.Context, in ListInput) (ProductListOutput, error) {
	items, total, err := u.productRepo.ListLive(ctx, toPageQuery(in))
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ProductListOutput{Items: items, Total: total}, nil
}

func (u *ProductUsecase) GetProductsByCategory(ctx context.Context, categoryID string, in ListInput) (ProductListOutput, error) {
	if _, err := u.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ProductListOutput{}, NewHTTPError(http.StatusNotFound, "category not found")
		}
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, total, err := u.productRepo.ListByCategory(ctx, categoryID, toPageQuery(in))
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ProductListOutput{Items: items, Total: total}, nil
}

func (u *ProductUsecase) SearchProducts(ctx context.Context, keyword string, in ListInput) (ProductListOutput, error) {
	if strings.TrimSpace(keyword) == "" {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "keyword required")
	}

	items, total, err := u.productRepo.SearchByTitle(ctx, keyword, toPageQuery(in))
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ProductListOutput{Items: items, Total: total}, nil
}

// SetProductImage は画像ファイル名だけ差し替える。
func (u *ProductUsecase) SetProductImage(ctx context.Context, productID string, imageName string) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p.ProductImage = imageName
	if err := u.productRepo.Update(ctx, p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func toPageQuery(in ListInput) repo.PageQuery {
	return repo.PageQuery{
		PageNumber: in.PageNumber,
		PageSize:   in.PageSize,
		SortBy:     in.SortBy,
		SortDir:    in.SortDir,
	}
}
