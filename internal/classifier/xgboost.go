package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"hotel-cancellation-backend/internal/encode"
)

const objectiveBinaryLogistic = "binary:logistic"

// xgbDocument mirrors the parts of XGBoost's JSON model format that scoring needs.
type xgbDocument struct {
	Learner xgbLearner `json:"learner"`
	Version []int      `json:"version"`
}

type xgbLearner struct {
	FeatureNames      []string      `json:"feature_names"`
	LearnerModelParam xgbModelParam `json:"learner_model_param"`
	Objective         xgbObjective  `json:"objective"`
	GradientBooster   xgbBooster    `json:"gradient_booster"`
}

type xgbModelParam struct {
	BaseScore  string `json:"base_score"`
	NumFeature string `json:"num_feature"`
}

type xgbObjective struct {
	Name string `json:"name"`
}

type xgbBooster struct {
	Name  string         `json:"name"`
	Model xgbBoosterBody `json:"model"`
}

type xgbBoosterBody struct {
	Trees   []xgbTree `json:"trees"`
	Weights []float64 `json:"weights"`
}

type xgbTree struct {
	LeftChildren    []int     `json:"left_children"`
	RightChildren   []int     `json:"right_children"`
	SplitIndices    []int     `json:"split_indices"`
	SplitConditions []float64 `json:"split_conditions"`
	DefaultLeft     flagList  `json:"default_left"`
	SplitType       []int     `json:"split_type"`
}

// flagList accepts both the boolean arrays written by XGBoost 1.x and the
// 0/1 integer arrays written by 2.x.
type flagList []bool

func (f *flagList) UnmarshalJSON(data []byte) error {
	var bools []bool
	if err := json.Unmarshal(data, &bools); err == nil {
		*f = bools
		return nil
	}
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return fmt.Errorf("default_left: %w", err)
	}
	out := make([]bool, len(ints))
	for i, v := range ints {
		out[i] = v != 0
	}
	*f = out
	return nil
}

type tree struct {
	left, right []int
	feature     []int
	cond        []float64
	defaultLeft []bool
}

// leaf walks the tree for fv and returns the leaf value.
func (t *tree) leaf(fv *encode.FeatureVector) float64 {
	n := 0
	for t.left[n] != -1 {
		x := fv[t.feature[n]]
		switch {
		case math.IsNaN(x):
			if t.defaultLeft[n] {
				n = t.left[n]
			} else {
				n = t.right[n]
			}
		case x < t.cond[n]:
			n = t.left[n]
		default:
			n = t.right[n]
		}
	}
	return t.cond[n]
}

// Model is a binary:logistic XGBoost booster. It is immutable once loaded
// and safe for concurrent use.
type Model struct {
	path         string
	featureNames []string
	numFeatures  int
	baseMargin   float64
	trees        []tree
	weights      []float64 // gblinear only
	bias         float64
}

// Load reads an XGBoost JSON model (Booster.save_model("*.json")) from path.
// Any failure is reported as a *ModelUnavailableError.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModelUnavailableError{Path: path, Err: err}
	}

	var doc xgbDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ModelUnavailableError{Path: path, Err: fmt.Errorf("decode model json: %w", err)}
	}

	m, err := newModel(&doc)
	if err != nil {
		return nil, &ModelUnavailableError{Path: path, Err: err}
	}
	m.path = path

	log.Printf("loaded %s model from %s (features=%d trees=%d xgboost=%v)",
		doc.Learner.GradientBooster.Name, path, m.numFeatures, len(m.trees), doc.Version)
	return m, nil
}

func newModel(doc *xgbDocument) (*Model, error) {
	l := &doc.Learner
	if l.Objective.Name != objectiveBinaryLogistic {
		return nil, fmt.Errorf("unsupported objective %q, want %q", l.Objective.Name, objectiveBinaryLogistic)
	}

	baseScore, err := parseParam(l.LearnerModelParam.BaseScore)
	if err != nil {
		return nil, fmt.Errorf("base_score: %w", err)
	}
	if baseScore <= 0 || baseScore >= 1 {
		return nil, fmt.Errorf("base_score %v outside (0, 1)", baseScore)
	}
	numFeature, err := parseParam(l.LearnerModelParam.NumFeature)
	if err != nil {
		return nil, fmt.Errorf("num_feature: %w", err)
	}
	if numFeature < 0 {
		return nil, fmt.Errorf("num_feature %v is negative", numFeature)
	}

	m := &Model{
		featureNames: l.FeatureNames,
		numFeatures:  int(numFeature),
		baseMargin:   math.Log(baseScore / (1 - baseScore)),
	}
	if len(m.featureNames) > 0 && len(m.featureNames) != m.numFeatures {
		return nil, fmt.Errorf("model lists %d feature names but num_feature is %d", len(m.featureNames), m.numFeatures)
	}

	switch l.GradientBooster.Name {
	case "gbtree":
		for i, xt := range l.GradientBooster.Model.Trees {
			t, err := buildTree(xt, m.numFeatures)
			if err != nil {
				return nil, fmt.Errorf("tree %d: %w", i, err)
			}
			m.trees = append(m.trees, t)
		}
		if len(m.trees) == 0 {
			return nil, errors.New("gbtree model has no trees")
		}
	case "gblinear":
		w := l.GradientBooster.Model.Weights
		if len(w) != m.numFeatures+1 {
			return nil, fmt.Errorf("gblinear model has %d weights, want %d", len(w), m.numFeatures+1)
		}
		m.weights = w[:m.numFeatures]
		m.bias = w[m.numFeatures]
	default:
		return nil, fmt.Errorf("unsupported booster %q", l.GradientBooster.Name)
	}
	return m, nil
}

func buildTree(xt xgbTree, numFeatures int) (tree, error) {
	n := len(xt.LeftChildren)
	if n == 0 {
		return tree{}, errors.New("empty tree")
	}
	if len(xt.RightChildren) != n || len(xt.SplitIndices) != n || len(xt.SplitConditions) != n || len(xt.DefaultLeft) != n {
		return tree{}, errors.New("node arrays have different lengths")
	}
	for i := 0; i < n; i++ {
		if i < len(xt.SplitType) && xt.SplitType[i] != 0 {
			return tree{}, fmt.Errorf("node %d: categorical splits are not supported", i)
		}
		if xt.LeftChildren[i] == -1 {
			continue
		}
		if xt.LeftChildren[i] <= i || xt.LeftChildren[i] >= n || xt.RightChildren[i] <= i || xt.RightChildren[i] >= n {
			return tree{}, fmt.Errorf("node %d: child index out of range", i)
		}
		if xt.SplitIndices[i] < 0 || xt.SplitIndices[i] >= numFeatures {
			return tree{}, fmt.Errorf("node %d: split feature %d out of range", i, xt.SplitIndices[i])
		}
	}
	return tree{
		left:        xt.LeftChildren,
		right:       xt.RightChildren,
		feature:     xt.SplitIndices,
		cond:        xt.SplitConditions,
		defaultLeft: xt.DefaultLeft,
	}, nil
}

// parseParam reads XGBoost's string-encoded numeric params, e.g. "5E-1" or "[5E-1]".
func parseParam(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "["), "]")
	return strconv.ParseFloat(s, 64)
}

// PredictProba returns [P(not canceled), P(canceled)].
// Models wider than the encoder are rejected by CheckSchema at startup.
func (m *Model) PredictProba(fv encode.FeatureVector) ([2]float64, error) {
	if m.numFeatures > len(fv) {
		return [2]float64{}, fmt.Errorf("model expects %d features, got %d", m.numFeatures, len(fv))
	}
	margin := m.baseMargin
	if m.weights != nil {
		margin += floats.Dot(m.weights, fv[:m.numFeatures]) + m.bias
	} else {
		leaves := make([]float64, len(m.trees))
		for i := range m.trees {
			leaves[i] = m.trees[i].leaf(&fv)
		}
		margin += floats.Sum(leaves)
	}
	if math.IsNaN(margin) || math.IsInf(margin, 0) {
		return [2]float64{}, fmt.Errorf("model produced non-finite margin %v", margin)
	}

	p1 := 1 / (1 + math.Exp(-margin))
	return [2]float64{1 - p1, p1}, nil
}

// FeatureNames returns the column names recorded in the artifact, if any.
func (m *Model) FeatureNames() []string {
	if len(m.featureNames) == 0 {
		return nil
	}
	names := make([]string, len(m.featureNames))
	copy(names, m.featureNames)
	return names
}

// NumFeatures returns the model's num_feature parameter.
func (m *Model) NumFeatures() int {
	return m.numFeatures
}

// Path returns the file the model was loaded from.
func (m *Model) Path() string {
	return m.path
}
