package template

import (
	"html/template"
	"io"
)

var Login *template.Template
var Dashboard *template.Template
var MetalList *template.Template
var Metal *template.Template
var CoinList *template.Template
var Coin *template.Template
var GoldbackList *template.Template
var Goldback *template.Template

func Init() {
	Login = template.Must(template.ParseFiles(
		"template/base.tmpl",
		"template/login.tmpl",
	))
	Dashboard = template.Must(template.ParseFiles(
		"template/base.tmpl",
		"template/dashboard.tmpl",
	))
	MetalList = template.Must(template.ParseFiles(
		"template/base.tmpl",
		"template/metal-form.tmpl",
		"template/metal-list.tmpl",
	))
	Metal = template.Must(template.ParseFiles(
		"template/base.tmpl",
		"template/metal-form.tmpl",
		"template/metal.tmpl",
	))
	CoinList = template.Must(template.ParseFiles(
		"template/base.tmpl",
		"template/coin-form.tmpl",
		"template/coin-list.tmpl",
	))
	Coin = template.Must(template.ParseFiles(
		"template/base.tmpl",
		"template/coin-form.tmpl",
		"template/coin.tmpl",
	))
	GoldbackList = template.Must(template.ParseFiles(
		"template/base.tmpl",
		"template/goldback-form.tmpl",
		"template/goldback-list.tmpl",
	))
	Goldback = template.Must(template.ParseFiles(
		"template/base.tmpl",
		"template/goldback-form.tmpl",
		"template/goldback.tmpl",
	))
}

func Render(tmpl *template.Template, writer io.Writer, data interface{}) {
	tmpl.ExecuteTemplate(writer, "base", data)
}
