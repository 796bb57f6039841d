package handlers

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"grain-api/internal/models"
)

func TestSerializeDocument(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := bson.M{"_id": oid, "name": "Wheat", "stock_tons": 12.0}

	out := SerializeDocument(doc)
	if out["id"] != oid.Hex() {
		t.Fatalf("expected id %s, got %v", oid.Hex(), out["id"])
	}
	if _, ok := out["_id"]; ok {
		t.Fatal("expected _id removed")
	}
	if out["name"] != "Wheat" || out["stock_tons"] != 12.0 {
		t.Fatalf("fields not preserved: %v", out)
	}
	if _, ok := doc["_id"]; !ok {
		t.Fatal("input document must not be modified")
	}

	if got := SerializeDocument(bson.M{"_id": int32(7)})["id"]; got != "7" {
		t.Fatalf("expected string id 7, got %v", got)
	}
	if _, ok := SerializeDocument(bson.M{"name": "x"})["id"]; ok {
		t.Fatal("no id expected when _id is missing")
	}
}

func TestValidationDetail(t *testing.T) {
	RegisterValidators()

	moisture := 150.0
	price := -1.0
	url := "ftp://files.example.com/a.jpg"
	p := models.GrainProduct{Name: "Wheat", PricePerTon: &price, Moisture: &moisture, ImageURL: &url}

	err := binding.Validator.ValidateStruct(&p)
	if err == nil {
		t.Fatal("expected validation error")
	}
	issues := validationDetail(err)

	want := []struct{ field, rule string }{
		{"price_per_ton", "gte"},
		{"stock_tons", "required"},
		{"moisture", "lte"},
		{"image_url", "http_url"},
	}
	if len(issues) != len(want) {
		t.Fatalf("expected %d issues, got %+v", len(want), issues)
	}
	for i, w := range want {
		if issues[i].Loc[1] != w.field || issues[i].Type != w.rule {
			t.Fatalf("issue %d: expected %s/%s, got %+v", i, w.field, w.rule, issues[i])
		}
		if issues[i].Msg == "" {
			t.Fatalf("issue %d: empty message", i)
		}
	}
}

func TestValidationDetailTypeError(t *testing.T) {
	var p models.GrainProduct
	err := json.Unmarshal([]byte(`{"name":"Wheat","stock_tons":"lots"}`), &p)
	issues := validationDetail(err)
	if len(issues) != 1 || issues[0].Type != "type_error" || issues[0].Loc[1] != "stock_tons" {
		t.Fatalf("unexpected issues: %+v", issues)
	}

	issues = validationDetail(errors.New("unexpected EOF"))
	if len(issues) != 1 || issues[0].Type != "json_invalid" {
		t.Fatalf("unexpected issues: %+v", issues)
	}
}

func TestDefaultServicesAreValid(t *testing.T) {
	RegisterValidators()

	services := models.DefaultPhotographyServices()
	if len(services) != 4 {
		t.Fatalf("expected 4 default services, got %d", len(services))
	}
	for _, svc := range services {
		if err := binding.Validator.ValidateStruct(&svc); err != nil {
			t.Fatalf("%s: %v", svc.Name, err)
		}
	}
}

func TestPreview(t *testing.T) {
	if got := preview("short"); got != "short" {
		t.Fatalf("unexpected %q", got)
	}
	long := "ñññññññññññññññññññññññññññññññññññññññññññññññññññññññ"
	if got := []rune(preview(long)); len(got) != errorPreviewLength {
		t.Fatalf("expected %d runes, got %d", errorPreviewLength, len(got))
	}
}
