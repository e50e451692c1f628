package services

import (
	"context"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService() (*RekognitionService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// Labels too generic to look up in the food database.
var genericFoodLabels = map[string]struct{}{
	"food": {}, "meal": {}, "dish": {}, "cuisine": {},
	"plate": {}, "produce": {}, "snack": {}, "dessert": {},
}

// DetectFoodLabels returns food-related labels for an image, most
// confident first, with the generic ones filtered out.
func (r *RekognitionService) DetectFoodLabels(imageBytes []byte) ([]string, error) {
	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: imageBytes},
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(70),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		if l.Name == nil {
			continue
		}
		if !isFoodLabel(l) {
			continue
		}
		if _, generic := genericFoodLabels[strings.ToLower(*l.Name)]; generic {
			continue
		}
		labels = append(labels, *l.Name)
	}
	return labels, nil
}

func isFoodLabel(l types.Label) bool {
	if l.Name != nil {
		if _, ok := genericFoodLabels[strings.ToLower(*l.Name)]; ok {
			return true
		}
	}
	for _, p := range l.Parents {
		if p.Name == nil {
			continue
		}
		switch strings.ToLower(*p.Name) {
		case "food", "beverage", "produce":
			return true
		}
	}
	return false
}
