// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import "github.com/pdiddy/scholar-search/pkg/types"

// VenueOptions lists the venues offered as filter choices. Some do not
// appear in the built-in collection.
var VenueOptions = []string{
	"Nature",
	"Science",
	"Cell",
	"IEEE Transactions",
	"Nature Machine Intelligence",
	"Climate Dynamics",
	"Renewable and Sustainable Energy Reviews",
	"Journal of Biomedical Informatics",
}

var builtinRecords = []types.Record{
	{
		ID:       "1",
		Title:    "Advances in Machine Learning for Scientific Discovery",
		Authors:  []string{"Chen, L.", "Wang, M.", "Smith, J.", "Johnson, A."},
		Abstract: "This paper presents a comprehensive review of machine learning applications in scientific research. We demonstrate how deep learning models can accelerate discovery in materials science, drug discovery, and genomics. Our novel approach achieves state-of-the-art results on multiple benchmark datasets.",
		Year:      2024,
		Venue:     "Nature Machine Intelligence",
		Citations: 156,
		DOI:       "10.1038/s42256-024-00123-4",
		Keywords:  []string{"Machine Learning", "Scientific Discovery", "Deep Learning", "AI"},
		Category:  types.CategoryReview,
	},
	{
		ID:       "2",
		Title:    "Quantum Computing Applications in Cryptography",
		Authors:  []string{"Zhang, Y.", "Brown, R.", "Lee, S."},
		Abstract: "We explore the potential impact of quantum computing on modern cryptographic systems. Our analysis shows that post-quantum cryptographic methods can provide robust security against quantum attacks while maintaining computational efficiency.",
		Year:      2023,
		Venue:     "IEEE Transactions on Quantum Engineering",
		Citations: 89,
		Keywords:  []string{"Quantum Computing", "Cryptography", "Security", "Post-Quantum"},
		Category:  types.CategoryArticle,
	},
	{
		ID:       "3",
		Title:    "Climate Change Modeling Using Neural Networks",
		Authors:  []string{"Garcia, M.", "Martinez, C.", "Rodriguez, A.", "Lopez, K."},
		Abstract: "This study introduces a novel neural network architecture for climate prediction. The model integrates satellite data, ocean temperature measurements, and atmospheric patterns to improve long-term climate forecasts.",
		Year:      2024,
		Venue:     "Climate Dynamics",
		Citations: 234,
		Keywords:  []string{"Climate Change", "Neural Networks", "Environmental Science", "Prediction"},
		Category:  types.CategoryArticle,
	},
	{
		ID:       "4",
		Title:    "CRISPR-Cas9: Recent Advances and Therapeutic Applications",
		Authors:  []string{"Patel, N.", "Kim, H.", "Müller, F.", "Suzuki, T."},
		Abstract: "A comprehensive review of CRISPR-Cas9 gene editing technology and its therapeutic applications. We discuss recent breakthroughs in treating genetic disorders and the future potential of personalized gene therapy.",
		Year:      2023,
		Venue:     "Cell",
		Citations: 445,
		Keywords:  []string{"CRISPR", "Gene Editing", "Therapeutics", "Biotechnology"},
		Category:  types.CategoryReview,
	},
	{
		ID:       "5",
		Title:    "Blockchain Technology for Supply Chain Management",
		Authors:  []string{"Anderson, P.", "Wilson, D."},
		Abstract: "This paper proposes a blockchain-based framework for transparent and secure supply chain management. The system enables real-time tracking, verification of authenticity, and automated compliance checking.",
		Year:      2022,
		Venue:     "International Journal of Production Economics",
		Citations: 178,
		Keywords:  []string{"Blockchain", "Supply Chain", "Logistics", "Smart Contracts"},
		Category:  types.CategoryArticle,
	},
	{
		ID:       "6",
		Title:    "Natural Language Processing for Healthcare Applications",
		Authors:  []string{"Taylor, E.", "Davies, R.", "Chen, X."},
		Abstract: "We present a transformer-based model for analyzing medical records and extracting clinical insights. The system demonstrates high accuracy in diagnosis prediction and treatment recommendation tasks.",
		Year:      2024,
		Venue:     "Journal of Biomedical Informatics",
		Citations: 67,
		Keywords:  []string{"NLP", "Healthcare", "Transformers", "Medical AI"},
		Category:  types.CategoryArticle,
	},
	{
		ID:       "7",
		Title:    "Sustainable Energy Solutions: A Comprehensive Analysis",
		Authors:  []string{"Nakamura, Y.", "Thompson, B.", "Vargas, L."},
		Abstract: "This study analyzes renewable energy technologies and their integration into existing power grids. We provide recommendations for policy makers and utilities seeking to transition to sustainable energy sources.",
		Year:      2023,
		Venue:     "Renewable and Sustainable Energy Reviews",
		Citations: 312,
		Keywords:  []string{"Renewable Energy", "Sustainability", "Power Grid", "Climate"},
		Category:  types.CategoryReview,
	},
	{
		ID:       "8",
		Title:    "Edge Computing for IoT: Architecture and Applications",
		Authors:  []string{"Rossi, A.", "Ferrari, M.", "Bianchi, C."},
		Abstract: "We propose a novel edge computing architecture for IoT applications that reduces latency and bandwidth usage. The system enables real-time data processing and intelligent decision-making at the network edge.",
		Year:      2024,
		Venue:     "IEEE Internet of Things Journal",
		Citations: 94,
		Keywords:  []string{"Edge Computing", "IoT", "Distributed Systems", "Architecture"},
		Category:  types.CategoryArticle,
	},
}

// Builtin returns the demonstration collection of eight records.
func Builtin() *Static {
	s, err := NewStatic(builtinRecords)
	if err != nil {
		panic(err)
	}
	return s
}
