package web

import "html/template"

// Page templates. The markup is deliberately minimal; layout and styling
// live outside this module.
const pageTemplates = `
{{define "header"}}
<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
<header>
  <a href="/">Abokichi</a>
  <a href="/products">Products</a>
  {{if gt .CartCount 0}}<span data-cart-count>{{.CartCount}}</span>{{end}}
</header>
{{end}}

{{define "footer"}}
</body>
</html>
{{end}}

{{define "home"}}
{{template "header" .}}
<section class="curated-grid" style="grid-template-columns: repeat(4, 1fr)">
  {{range .Cards}}
  <article class="product-card" data-product-id="{{.ProductID}}">
    <a href="/product?id={{.ProductID}}">
      <img src="{{.Image}}" alt="{{.Name}}" />
      <h3>{{.Name}}</h3>
    </a>
  </article>
  {{end}}
</section>
{{template "footer" .}}
{{end}}

{{define "products"}}
{{template "header" .}}
<p class="products-count">{{.Count}}</p>
{{if .Message}}
<p class="no-products">{{.Message}}</p>
{{else}}
<div id="product-grid" style="grid-template-columns: repeat({{.Columns}}, 1fr)">
  {{range .Cards}}
  <article class="product-card">
    <a href="/product?id={{.ProductID}}">
      <img src="{{.Image}}" alt="{{.Name}}" />
      <h3>{{.Name}}</h3>
      <div class="product-price">
        {{.Price}}
        {{if .OldPrice}}<span class="product-old-price">{{.OldPrice}}</span>{{end}}
      </div>
      <div class="product-rating">
        <span class="stars">{{.Stars}}</span>
        <span class="reviews">{{.Reviews}} Reviews</span>
      </div>
    </a>
  </article>
  {{end}}
</div>
{{end}}
{{template "footer" .}}
{{end}}

{{define "product"}}
{{template "header" .}}
<nav class="breadcrumb">Products / <span id="breadcrumb-product-name">{{.Breadcrumb}}</span></nav>
<div class="gallery">
  <img id="product-main-img" src="{{.MainImage}}" alt="{{.Name}}" />
  <div id="thumbnail-list">
    {{range .Thumbnails}}
    <img src="{{.Src}}" alt="{{.Alt}}" class="thumbnail{{if .Active}} active{{end}}" />
    {{end}}
  </div>
</div>
<h1 id="product-title">{{.Name}}</h1>
<div class="price">
  <span id="current-price">{{.Price}}</span>
  {{if .OldPrice}}<span id="old-price">{{.OldPrice}}</span>{{end}}
</div>
<div class="rating">
  <span id="product-stars">{{.Stars}}</span>
  <span id="reviews-count">{{.Reviews}}</span>
</div>
<p id="product-short-desc">{{.ShortDesc}}</p>
<form method="post" action="/cart/add">
  <input type="hidden" name="id" value="{{.ProductID}}" />
  <button id="add-to-cart">ADD TO CART</button>
</form>
<form method="post" action="/buy">
  <input type="hidden" name="id" value="{{.ProductID}}" />
  <button id="buy-now">BUY NOW</button>
</form>
<div id="product-description-content">
  {{range .Description}}<p>{{.}}</p>{{end}}
</div>
{{template "footer" .}}
{{end}}

{{define "order"}}
{{template "header" .}}
<div class="order-card">
  <h1>Thank you for your order!</h1>
  <p>We received your order for <span id="order-product-name">{{.ProductName}}</span>.</p>
  {{range .Lines}}<p>{{.}}</p>{{end}}
</div>
{{template "footer" .}}
{{end}}
`

func parseTemplates() (*template.Template, error) {
	return template.New("storefront").Parse(pageTemplates)
}
