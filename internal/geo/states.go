package geo

// states holds simplified outlines for the 50 states plus DC. Shapes
// are matched in slice order, so enclosed or heavily-bordered shapes
// (DC, the small eastern states) come before their large neighbors.
// Shared borders reuse the same vertices on both sides to keep the
// seams tight. Rings may be listed in either winding direction.
var states = []stateShape{
	{code: "DC", rings: [][]point{{
		{38.995, -77.041}, {38.893, -76.909}, {38.788, -77.039},
		{38.900, -77.068}, {38.934, -77.119},
	}}},
	{code: "DE", rings: [][]point{{
		{39.72, -75.79}, {39.80, -75.50}, {39.30, -75.40}, {38.80, -75.07},
		{38.45, -75.05}, {38.45, -75.70},
	}}},
	{code: "RI", rings: [][]point{{
		{42.02, -71.80}, {42.02, -71.38}, {41.60, -71.19}, {41.35, -71.46},
		{41.30, -71.84},
	}}},
	{code: "CT", rings: [][]point{{
		{42.03, -73.49}, {42.03, -71.80}, {41.30, -71.84}, {41.27, -72.35},
		{41.15, -73.10}, {40.95, -73.66}, {41.35, -73.55},
	}}},
	{code: "NJ", rings: [][]point{{
		{41.36, -74.70}, {41.00, -73.90}, {40.64, -74.08}, {40.45, -73.97},
		{39.50, -74.25}, {38.95, -74.90}, {39.50, -75.55}, {39.70, -75.52},
		{40.20, -74.77}, {40.56, -75.07},
	}}},
	{code: "MD", rings: [][]point{{
		{39.72, -79.48}, {39.72, -75.79}, {38.45, -75.79}, {38.45, -75.05},
		{38.02, -75.22}, {37.95, -75.80}, {38.20, -76.00}, {38.85, -76.15},
		{39.35, -76.05}, {39.55, -76.08}, {39.20, -76.40}, {38.70, -76.50},
		{38.05, -76.32}, {38.30, -77.05}, {38.60, -77.25}, {38.93, -77.12},
		{39.07, -77.50}, {39.32, -77.72}, {39.45, -78.50}, {39.30, -79.48},
	}}},
	{code: "MA", rings: [][]point{{
		{42.03, -73.49}, {42.74, -73.26}, {42.73, -72.46}, {42.70, -71.30},
		{42.85, -70.85}, {42.63, -70.60}, {42.05, -70.17}, {41.78, -69.93},
		{41.55, -70.62}, {41.60, -71.19}, {42.02, -71.38}, {42.02, -71.80},
	}}},
	{code: "NH", rings: [][]point{{
		{42.70, -72.46}, {43.00, -72.45}, {44.00, -72.17}, {45.01, -71.53},
		{45.30, -71.08}, {44.00, -70.98}, {43.05, -70.70}, {42.85, -70.85},
		{42.70, -71.30},
	}}},
	{code: "VT", rings: [][]point{{
		{42.73, -73.26}, {43.60, -73.37}, {45.01, -73.34}, {45.01, -71.53},
		{44.00, -72.17}, {43.00, -72.45}, {42.73, -72.46},
	}}},
	{code: "ME", rings: [][]point{{
		{43.05, -70.70}, {44.00, -70.98}, {45.30, -71.00}, {45.90, -70.30},
		{46.70, -70.00}, {47.46, -69.22}, {47.07, -67.79}, {45.60, -67.43},
		{45.20, -67.30}, {44.80, -66.98}, {44.40, -68.20}, {43.80, -69.80},
	}}},
	{code: "NY", rings: [][]point{{
		{42.00, -79.76}, {42.27, -79.76}, {42.90, -78.90}, {43.30, -79.06},
		{43.45, -76.50}, {44.10, -76.30}, {44.40, -75.80}, {45.00, -74.66},
		{45.01, -73.34}, {43.60, -73.37}, {42.73, -73.26}, {42.03, -73.49},
		{41.35, -73.55}, {40.95, -73.66}, {41.15, -72.00}, {41.05, -71.85},
		{40.58, -73.90}, {40.49, -74.26}, {40.70, -74.02}, {41.00, -73.90},
		{41.36, -74.70}, {42.00, -75.35},
	}}},
	{code: "PA", rings: [][]point{{
		{39.72, -80.52}, {42.00, -80.52}, {42.27, -79.76}, {42.00, -79.76},
		{42.00, -75.35}, {41.36, -74.70}, {40.56, -75.07}, {40.20, -74.77},
		{39.88, -75.13}, {39.72, -75.79},
	}}},
	{code: "VA", rings: [][]point{{
		{36.59, -83.68}, {36.59, -75.75}, {37.60, -76.25}, {38.00, -76.35},
		{38.30, -77.00}, {38.70, -77.03}, {38.95, -77.12}, {39.07, -77.50},
		{39.32, -77.72}, {39.00, -78.35}, {38.40, -79.00}, {37.50, -80.30},
		{37.25, -81.40}, {36.98, -81.90}, {36.60, -82.90},
	}}},
	{code: "WV", rings: [][]point{{
		{37.20, -81.97}, {37.25, -81.40}, {37.50, -80.30}, {38.40, -79.00},
		{39.00, -78.35}, {39.32, -77.72}, {39.45, -78.50}, {39.30, -79.48},
		{39.72, -79.48}, {39.72, -80.52}, {40.60, -80.52}, {40.60, -80.66},
		{39.60, -80.90}, {38.80, -82.20}, {38.40, -82.60}, {37.80, -82.40},
		{37.20, -82.30},
	}}},
	{code: "NC", rings: [][]point{{
		{36.55, -81.68}, {36.55, -75.90}, {35.90, -75.55}, {35.20, -75.50},
		{34.60, -76.50}, {33.85, -78.00}, {33.85, -78.55}, {34.80, -79.67},
		{35.20, -81.00}, {35.20, -82.35}, {35.00, -83.10}, {35.00, -84.32},
	}}},
	{code: "SC", rings: [][]point{{
		{35.00, -83.10}, {35.20, -82.35}, {35.20, -81.00}, {34.80, -79.67},
		{33.85, -78.55}, {32.70, -79.95}, {32.05, -80.90}, {33.00, -81.50},
		{33.95, -82.20},
	}}},
	{code: "GA", rings: [][]point{{
		{35.00, -85.60}, {35.00, -83.10}, {33.95, -82.20}, {33.00, -81.50},
		{32.05, -80.90}, {31.00, -81.45}, {30.71, -81.55}, {30.63, -82.20},
		{30.70, -84.86}, {31.00, -85.00}, {32.90, -85.18},
	}}},
	{code: "FL", rings: [][]point{{
		{30.71, -81.55}, {30.00, -81.30}, {28.50, -80.50}, {26.00, -80.05},
		{25.10, -80.40}, {25.20, -81.10}, {25.90, -81.70}, {26.50, -82.20},
		{28.00, -82.80}, {29.10, -83.00}, {29.90, -84.30}, {30.10, -85.70},
		{30.25, -87.10}, {30.25, -87.60}, {31.00, -87.60}, {31.00, -85.00},
		{30.70, -84.86}, {30.63, -82.20},
	}}},
	{code: "AL", rings: [][]point{{
		{35.00, -88.20}, {35.00, -85.60}, {32.90, -85.18}, {31.00, -85.00},
		{31.00, -87.60}, {30.25, -87.60}, {30.25, -88.00}, {30.20, -88.40},
		{31.00, -88.47},
	}}},
	{code: "MS", rings: [][]point{{
		{35.00, -90.31}, {35.00, -88.20}, {31.00, -88.47}, {30.20, -88.40},
		{30.20, -89.60}, {31.00, -89.73}, {31.00, -91.64}, {33.00, -91.16},
		{34.00, -91.10},
	}}},
	{code: "TN", rings: [][]point{{
		{36.60, -89.40}, {36.60, -81.68}, {35.80, -82.60}, {35.40, -83.00},
		{35.00, -84.32}, {35.00, -90.31}, {35.90, -89.65},
	}}},
	{code: "KY", rings: [][]point{{
		{36.60, -89.40}, {36.60, -83.68}, {37.20, -82.30}, {37.80, -82.40},
		{38.40, -82.60}, {38.75, -83.30}, {39.10, -84.50}, {38.28, -85.74},
		{37.90, -87.60}, {37.07, -88.60}, {36.97, -89.13},
	}}},
	{code: "OH", rings: [][]point{{
		{41.74, -84.81}, {41.50, -82.70}, {41.90, -80.52}, {40.64, -80.52},
		{40.60, -80.66}, {39.60, -80.90}, {38.80, -82.20}, {38.40, -82.60},
		{38.75, -83.30}, {39.10, -84.50}, {38.80, -84.80},
	}}},
	{code: "IN", rings: [][]point{{
		{41.76, -87.53}, {41.76, -84.81}, {38.80, -84.80}, {38.28, -85.74},
		{37.90, -87.60}, {37.80, -88.06}, {38.00, -87.90}, {39.00, -87.53},
	}}},
	{code: "IL", rings: [][]point{{
		{42.50, -90.64}, {42.50, -87.80}, {41.70, -87.53}, {39.00, -87.53},
		{38.00, -87.90}, {37.80, -88.06}, {37.07, -88.60}, {36.97, -89.13},
		{38.50, -90.10}, {39.10, -90.60}, {40.50, -91.40}, {41.60, -90.32},
	}}},
	{code: "MI", rings: [][]point{
		{
			{41.76, -86.80}, {41.74, -83.45}, {42.05, -83.13}, {42.90, -82.43},
			{44.05, -82.80}, {45.80, -84.50}, {45.70, -85.50}, {44.80, -86.20},
			{43.50, -86.55}, {42.30, -86.65},
		},
		{
			{45.40, -87.60}, {45.80, -86.60}, {45.70, -84.70}, {46.50, -84.35},
			{46.50, -85.00}, {46.40, -86.60}, {46.90, -88.00}, {47.40, -88.20},
			{46.80, -89.50}, {46.75, -90.40}, {46.50, -90.00}, {46.00, -88.70},
			{45.80, -88.10},
		},
	}},
	{code: "WI", rings: [][]point{{
		{42.50, -87.80}, {42.50, -90.64}, {43.50, -91.22}, {44.00, -91.90},
		{45.00, -92.75}, {46.70, -92.29}, {46.55, -90.90}, {46.50, -90.00},
		{46.00, -88.70}, {45.80, -88.10}, {45.40, -87.60}, {44.50, -87.50},
		{43.40, -87.87},
	}}},
	{code: "MN", rings: [][]point{{
		{43.50, -96.45}, {43.50, -91.22}, {44.00, -91.90}, {45.00, -92.75},
		{46.70, -92.29}, {46.78, -92.10}, {47.70, -90.20}, {48.00, -89.50},
		{48.60, -92.00}, {48.70, -94.40}, {49.38, -95.15}, {49.00, -95.15},
		{49.00, -97.23}, {46.00, -96.56}, {45.60, -96.77},
	}}},
	{code: "IA", rings: [][]point{{
		{43.50, -96.45}, {43.50, -91.22}, {42.50, -90.64}, {41.60, -90.32},
		{40.38, -91.42}, {40.58, -91.72}, {40.58, -95.77}, {41.50, -95.90},
		{42.50, -96.48},
	}}},
	{code: "MO", rings: [][]point{{
		{40.58, -95.77}, {40.58, -91.72}, {40.38, -91.42}, {39.10, -90.60},
		{38.50, -90.10}, {36.97, -89.13}, {36.00, -89.70}, {36.00, -90.37},
		{36.50, -90.37}, {36.50, -94.62}, {39.10, -94.61}, {39.75, -95.03},
	}}},
	{code: "AR", rings: [][]point{{
		{36.50, -94.62}, {36.50, -90.37}, {36.00, -90.37}, {36.00, -89.70},
		{35.00, -90.31}, {34.00, -91.10}, {33.00, -91.16}, {33.00, -94.04},
		{35.40, -94.43},
	}}},
	{code: "LA", rings: [][]point{{
		{33.00, -94.04}, {33.00, -91.16}, {31.00, -91.64}, {31.00, -89.73},
		{30.20, -89.60}, {29.20, -89.00}, {29.00, -90.20}, {29.50, -92.30},
		{29.70, -93.84}, {31.17, -93.53},
	}}},
	{code: "TX", rings: [][]point{{
		{36.50, -103.00}, {36.50, -100.00}, {34.50, -100.00}, {34.56, -99.40},
		{33.90, -98.10}, {33.72, -96.40}, {33.87, -94.48}, {33.00, -94.04},
		{31.17, -93.53}, {29.70, -93.84}, {28.00, -96.80}, {26.00, -97.15},
		{25.84, -97.40}, {26.10, -98.20}, {27.60, -99.50}, {29.30, -100.90},
		{29.50, -102.80}, {31.80, -106.53}, {32.00, -106.62}, {32.00, -103.00},
	}}},
	{code: "OK", rings: [][]point{{
		{37.00, -103.00}, {37.00, -94.62}, {35.40, -94.43}, {33.87, -94.48},
		{33.72, -96.40}, {33.90, -98.10}, {34.56, -99.40}, {34.50, -100.00},
		{36.50, -100.00}, {36.50, -103.00},
	}}},
	{code: "KS", rings: [][]point{{
		{40.00, -102.05}, {40.00, -95.31}, {39.75, -95.03}, {39.10, -94.61},
		{37.00, -94.61}, {37.00, -102.05},
	}}},
	{code: "NE", rings: [][]point{{
		{40.00, -102.05}, {41.00, -102.05}, {41.00, -104.05}, {43.00, -104.05},
		{43.00, -98.50}, {42.85, -97.90}, {42.50, -96.45}, {41.50, -95.90},
		{40.58, -95.77}, {40.00, -95.31},
	}}},
	{code: "SD", rings: [][]point{{
		{45.94, -104.05}, {45.94, -96.56}, {45.60, -96.77}, {43.50, -96.45},
		{42.50, -96.48}, {42.85, -97.90}, {43.00, -98.50}, {43.00, -104.05},
	}}},
	{code: "ND", rings: [][]point{{
		{45.94, -104.05}, {49.00, -104.05}, {49.00, -97.23}, {46.00, -96.56},
		{45.94, -96.56},
	}}},
	{code: "MT", rings: [][]point{{
		{45.00, -104.05}, {45.00, -111.05}, {44.50, -111.05}, {45.70, -113.70},
		{46.60, -114.45}, {47.00, -115.70}, {49.00, -116.05}, {49.00, -104.05},
	}}},
	{code: "WY", rings: [][]point{{
		{41.00, -111.05}, {45.00, -111.05}, {45.00, -104.05}, {41.00, -104.05},
	}}},
	{code: "CO", rings: [][]point{{
		{37.00, -109.05}, {41.00, -109.05}, {41.00, -102.05}, {37.00, -102.05},
	}}},
	{code: "NM", rings: [][]point{{
		{37.00, -109.05}, {37.00, -103.00}, {32.00, -103.00}, {32.00, -109.05},
	}}},
	{code: "AZ", rings: [][]point{{
		{37.00, -114.05}, {36.12, -114.05}, {35.00, -114.63}, {34.30, -114.14},
		{32.72, -114.72}, {32.49, -114.81}, {31.33, -111.07}, {31.33, -109.05},
		{37.00, -109.05},
	}}},
	{code: "UT", rings: [][]point{{
		{37.00, -114.05}, {42.00, -114.05}, {42.00, -111.05}, {41.00, -111.05},
		{41.00, -109.05}, {37.00, -109.05},
	}}},
	{code: "NV", rings: [][]point{{
		{42.00, -120.00}, {39.00, -120.00}, {35.00, -114.63}, {36.12, -114.05},
		{37.00, -114.05}, {42.00, -114.05},
	}}},
	{code: "ID", rings: [][]point{{
		{42.00, -117.03}, {49.00, -117.03}, {49.00, -116.05}, {47.00, -115.70},
		{46.60, -114.45}, {45.70, -113.70}, {44.50, -111.05}, {42.00, -111.05},
	}}},
	{code: "WA", rings: [][]point{{
		{46.00, -117.03}, {45.60, -119.00}, {45.60, -122.30}, {46.20, -123.50},
		{46.25, -124.10}, {48.40, -124.75}, {49.00, -123.10}, {49.00, -117.03},
	}}},
	{code: "OR", rings: [][]point{{
		{42.00, -117.03}, {46.00, -117.03}, {45.60, -119.00}, {45.60, -122.30},
		{46.20, -123.50}, {46.25, -124.10}, {42.00, -124.40},
	}}},
	{code: "CA", rings: [][]point{{
		{42.00, -124.40}, {42.00, -120.00}, {39.00, -120.00}, {35.00, -114.63},
		{34.30, -114.14}, {32.72, -114.72}, {32.53, -117.13}, {33.70, -118.30},
		{34.45, -120.50}, {36.30, -121.90}, {37.80, -122.50}, {40.40, -124.40},
	}}},
	{code: "AK", rings: [][]point{
		{
			{58.00, -168.00}, {71.50, -168.00}, {71.50, -141.00}, {59.90, -141.00},
			{59.00, -152.00}, {56.00, -158.00}, {56.00, -164.00},
		},
		{
			{54.60, -130.60}, {59.50, -134.50}, {59.90, -139.00}, {58.50, -137.50},
			{57.00, -135.50}, {55.00, -133.00},
		},
	}},
	{code: "HI", rings: [][]point{{
		{18.80, -160.30}, {22.30, -160.30}, {22.30, -154.70}, {18.80, -154.70},
	}}},
}
